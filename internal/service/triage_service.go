package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/fernvaleriano/coachpilot/internal/error_values"
	"github.com/fernvaleriano/coachpilot/internal/repository"
	"github.com/fernvaleriano/coachpilot/pkg/clock"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

const (
	missedWorkoutThresholdDays = 3
	missedWorkoutHighDays      = 7
	// noWorkoutSentinel stands in for "no workout in the lookback window
	// at all" so the severity and message paths stay uniform.
	noWorkoutSentinel = 999

	lowRatingThreshold = 2.5
	lowEnergyThreshold = 3.5

	overtrainingReadinessCeiling = 40
	overtrainingWorkoutFloor     = 5

	plateauSessionCount = 6

	workoutLookbackDays   = 14
	readinessLookbackDays = 7
	checkinLookbackDays   = 14
	exerciseHistoryLimit  = 100
)

type TriageService struct {
	flagsRepo     repository.FlagsRepositoryI
	clientsRepo   repository.ClientsRepositoryI
	workoutsRepo  repository.WorkoutsRepositoryI
	readinessRepo repository.ReadinessRepositoryI
	checkinsRepo  repository.CheckinsRepositoryI
	notifier      NotifierI
	clk           clock.Clock
}

func NewTriageService(flagsRepo repository.FlagsRepositoryI, clientsRepo repository.ClientsRepositoryI,
	workoutsRepo repository.WorkoutsRepositoryI, readinessRepo repository.ReadinessRepositoryI,
	checkinsRepo repository.CheckinsRepositoryI, notifier NotifierI, clk clock.Clock) *TriageService {
	if flagsRepo == nil || clientsRepo == nil || workoutsRepo == nil || readinessRepo == nil || checkinsRepo == nil || notifier == nil {
		log.Fatal("on triage service provided nil dependencies")
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return &TriageService{
		flagsRepo:     flagsRepo,
		clientsRepo:   clientsRepo,
		workoutsRepo:  workoutsRepo,
		readinessRepo: readinessRepo,
		checkinsRepo:  checkinsRepo,
		notifier:      notifier,
		clk:           clk,
	}
}

// Run executes all detectors for the client and returns the flags created by
// this run. Detectors whose flag type is already open or acknowledged are
// skipped so the coach never sees duplicates of an unresolved issue.
func (serv *TriageService) Run(ctx context.Context, clientID uuid.UUID) ([]*entity.TriageFlag, error) {
	client, err := serv.clientsRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrClientNotFound) {
			return nil, err
		}
		return nil, errors.New("clients repository error: " + err.Error())
	}
	if client.CoachID == nil {
		return []*entity.TriageFlag{}, nil
	}
	coachID := *client.CoachID

	today := clock.DateUTC(serv.clk.Now())

	workouts, err := serv.workoutsRepo.GetSince(ctx, clientID, today.AddDate(0, 0, -workoutLookbackDays))
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	readiness, err := serv.readinessRepo.GetSince(ctx, clientID, today.AddDate(0, 0, -readinessLookbackDays))
	if err != nil {
		return nil, errors.New("readiness repository error: " + err.Error())
	}
	// Check-in energy does not feed any detector, but a broken check-ins
	// store still fails the run.
	if _, err := serv.checkinsRepo.GetSince(ctx, clientID, today.AddDate(0, 0, -checkinLookbackDays)); err != nil {
		return nil, errors.New("checkins repository error: " + err.Error())
	}

	openTypes, err := serv.flagsRepo.OpenFlagTypes(ctx, clientID)
	if err != nil {
		return nil, errors.New("flags repository error: " + err.Error())
	}

	var newFlags []*entity.TriageFlag

	if _, open := openTypes[entity.FlagMissedWorkouts]; !open {
		if f := detectMissedWorkouts(client, workouts, today); f != nil {
			newFlags = append(newFlags, f)
		}
	}
	if _, open := openTypes[entity.FlagLowMotivation]; !open {
		if f := detectLowMotivation(client, workouts, readiness); f != nil {
			newFlags = append(newFlags, f)
		}
	}
	if _, open := openTypes[entity.FlagOvertraining]; !open {
		if f := detectOvertraining(client, workouts, readiness, today); f != nil {
			newFlags = append(newFlags, f)
		}
	}
	if _, open := openTypes[entity.FlagPlateau]; !open {
		sessions, err := serv.workoutsRepo.GetExerciseHistory(ctx, clientID, exerciseHistoryLimit)
		if err != nil {
			return nil, errors.New("workouts repository error: " + err.Error())
		}
		if f := detectPlateau(client, sessions); f != nil {
			newFlags = append(newFlags, f)
		}
	}

	if len(newFlags) == 0 {
		return []*entity.TriageFlag{}, nil
	}

	for _, f := range newFlags {
		f.ID = uuid.New()
		f.ClientID = clientID
		f.CoachID = coachID
		f.Status = entity.FlagOpen
	}

	if err := serv.flagsRepo.CreateBatch(ctx, newFlags); err != nil {
		return nil, errors.New("flags repository error: " + err.Error())
	}

	for _, f := range newFlags {
		serv.notifier.NotifyFlag(ctx, f)
	}

	return newFlags, nil
}

func (serv *TriageService) List(ctx context.Context, filter repository.FlagsFilter) ([]entity.TriageFlag, error) {
	flags, err := serv.flagsRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.New("flags repository error: " + err.Error())
	}
	return flags, nil
}

// UpdateStatus applies a coach action to a flag. Allowed transitions:
// open -> acknowledged, open|acknowledged -> resolved (stamps resolved_at and
// keeps the optional notes), open|acknowledged -> dismissed. Resolved and
// dismissed flags are immutable.
func (serv *TriageService) UpdateStatus(ctx context.Context, flagID uuid.UUID, status entity.FlagStatus, resolutionNotes *string) (*entity.TriageFlag, error) {
	if err := validate.Var(string(status), "flag_status"); err != nil {
		return nil, fmt.Errorf("%w: %q", errorvalues.ErrInvalidFlagStatus, status)
	}

	flag, err := serv.flagsRepo.GetByID(ctx, flagID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrFlagNotFound) {
			return nil, err
		}
		return nil, errors.New("flags repository error: " + err.Error())
	}

	if flag.Status.Terminal() {
		return nil, errorvalues.ErrFlagClosed
	}
	if status == entity.FlagAcknowledged && flag.Status != entity.FlagOpen {
		return nil, fmt.Errorf("%w: cannot acknowledge a %s flag", errorvalues.ErrInvalidFlagStatus, flag.Status)
	}

	flag.Status = status
	if status == entity.FlagResolved {
		now := serv.clk.Now().UTC()
		flag.ResolvedAt = &now
		flag.ResolutionNotes = resolutionNotes
	}

	if err := serv.flagsRepo.UpdateStatus(ctx, flag); err != nil {
		if errors.Is(err, errorvalues.ErrFlagNotFound) {
			return nil, err
		}
		return nil, errors.New("flags repository error: " + err.Error())
	}
	return flag, nil
}

func detectMissedWorkouts(client *entity.Client, workouts []entity.WorkoutLog, today time.Time) *entity.TriageFlag {
	daysSince := noWorkoutSentinel
	var lastWorkoutDate any
	if len(workouts) > 0 {
		daysSince = clock.DaysBetween(workouts[0].WorkoutDate, today)
		lastWorkoutDate = workouts[0].WorkoutDate.Format("2006-01-02")
	}
	if daysSince < missedWorkoutThresholdDays {
		return nil
	}

	severity := entity.SeverityMedium
	suggestion := "A gentle reminder or motivational message might help. Ask if anything has changed in their schedule."
	if daysSince >= missedWorkoutHighDays {
		severity = entity.SeverityHigh
		suggestion = "Consider reaching out with a personalized check-in. A video message or quick call can re-engage clients who have fallen off track."
	}

	return &entity.TriageFlag{
		FlagType:    entity.FlagMissedWorkouts,
		Severity:    severity,
		Title:       fmt.Sprintf("%s hasn't trained in %d days", client.Name, daysSince),
		Description: fmt.Sprintf("Last workout was %d days ago. This may indicate declining motivation or external factors affecting adherence.", daysSince),
		Suggestion:  suggestion,
		ContextData: map[string]any{
			"days_since_workout": daysSince,
			"last_workout_date":  lastWorkoutDate,
			"total_workouts_14d": len(workouts),
		},
	}
}

func detectLowMotivation(client *entity.Client, workouts []entity.WorkoutLog, readiness []entity.ReadinessAssessment) *entity.TriageFlag {
	var ratings []int
	for _, w := range workouts {
		if w.WorkoutRating == nil {
			continue
		}
		ratings = append(ratings, *w.WorkoutRating)
		if len(ratings) == 5 {
			break
		}
	}
	avgRating := average(ratings, 3)

	// Only readiness energy counts toward the signal.
	var energies []int
	for _, r := range readiness {
		if r.EnergyLevel == nil {
			continue
		}
		energies = append(energies, *r.EnergyLevel)
		if len(energies) == 5 {
			break
		}
	}
	avgEnergy := average(energies, 3)

	lowRating := avgRating != nil && *avgRating <= lowRatingThreshold
	lowEnergy := avgEnergy != nil && *avgEnergy <= lowEnergyThreshold
	if !lowRating && !lowEnergy {
		return nil
	}

	return &entity.TriageFlag{
		FlagType:    entity.FlagLowMotivation,
		Severity:    entity.SeverityMedium,
		Title:       fmt.Sprintf("%s showing signs of low motivation", client.Name),
		Description: fmt.Sprintf("Recent workout ratings average %s/5 and energy levels average %s/10. The client may be burning out or losing interest.", formatAvg(avgRating), formatAvg(avgEnergy)),
		Suggestion:  "Consider varying the training program, setting new short-term goals, or scheduling a motivational check-in. Sometimes a deload week or new exercises can reignite enthusiasm.",
		ContextData: map[string]any{
			"avg_rating": avgValue(avgRating),
			"avg_energy": avgValue(avgEnergy),
		},
	}
}

func detectOvertraining(client *entity.Client, workouts []entity.WorkoutLog, readiness []entity.ReadinessAssessment, today time.Time) *entity.TriageFlag {
	if len(readiness) < 3 {
		return nil
	}

	sum := 0
	for _, r := range readiness {
		sum += r.ReadinessScore
	}
	avgReadiness := float64(sum) / float64(len(readiness))

	var stresses []int
	for _, r := range readiness {
		if r.StressLevel != nil {
			stresses = append(stresses, *r.StressLevel)
		}
	}
	avgStress := average(stresses, 1)

	workoutsIn7d := 0
	for _, w := range workouts {
		if clock.DaysBetween(w.WorkoutDate, today) <= 7 {
			workoutsIn7d++
		}
	}

	if avgReadiness >= overtrainingReadinessCeiling || workoutsIn7d < overtrainingWorkoutFloor {
		return nil
	}

	return &entity.TriageFlag{
		FlagType: entity.FlagOvertraining,
		Severity: entity.SeverityHigh,
		Title:    fmt.Sprintf("%s may be overtraining", client.Name),
		Description: fmt.Sprintf("Readiness averaging %d/100 with %d workouts in the last 7 days. Stress level at %s/10. Risk of overreaching.",
			int(math.Round(avgReadiness)), workoutsIn7d, formatAvg(avgStress)),
		Suggestion: "Implement an immediate deload week. Reduce volume by 40-50% and focus on sleep hygiene and recovery. Consider adding an extra rest day to the program.",
		ContextData: map[string]any{
			"avg_readiness": avgReadiness,
			"workouts_7d":   workoutsIn7d,
			"avg_stress":    avgValue(avgStress),
		},
	}
}

func detectPlateau(client *entity.Client, sessions []entity.ExerciseSession) *entity.TriageFlag {
	// Sessions arrive newest first. Grouping keeps first-seen order so the
	// most recently trained exercise is checked first.
	var order []string
	history := make(map[string][]float64)
	for _, s := range sessions {
		if _, seen := history[s.ExerciseName]; !seen {
			order = append(order, s.ExerciseName)
		}
		history[s.ExerciseName] = append(history[s.ExerciseName], s.MaxWeight)
	}

	for _, name := range order {
		weights := history[name]
		if len(weights) < plateauSessionCount {
			continue
		}
		recent := weights[:plateauSessionCount]
		allSame := true
		for _, w := range recent {
			if w != recent[0] {
				allSame = false
				break
			}
		}
		if !allSame || recent[0] <= 0 {
			continue
		}

		return &entity.TriageFlag{
			FlagType:    entity.FlagPlateau,
			Severity:    entity.SeverityLow,
			Title:       fmt.Sprintf("%s plateaued on %s", client.Name, name),
			Description: fmt.Sprintf("Same weight (%g) for the last %d sessions on %s. May need programming adjustment.", recent[0], len(weights), name),
			Suggestion:  fmt.Sprintf("Consider changing rep schemes, adding variations, or implementing progressive overload techniques like pause reps, tempo work, or drop sets for %s.", name),
			ContextData: map[string]any{
				"exercise":        name,
				"stagnant_weight": recent[0],
				"sessions":        len(weights),
			},
		}
	}
	return nil
}

// average returns the mean of values when at least minSamples are present,
// nil otherwise.
func average(values []int, minSamples int) *float64 {
	if len(values) < minSamples || len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	avg := float64(sum) / float64(len(values))
	return &avg
}

func formatAvg(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", *v)
}

func avgValue(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}
