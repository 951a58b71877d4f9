package service

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	errorvalues "github.com/fernvaleriano/coachpilot/internal/error_values"
	"github.com/fernvaleriano/coachpilot/internal/repository"
	"github.com/fernvaleriano/coachpilot/pkg/clock"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

// StreakTypeReadiness is the streak bucket bumped on every check-in.
const StreakTypeReadiness = "readiness"

type ReadinessService struct {
	readinessRepo repository.ReadinessRepositoryI
	clientsRepo   repository.ClientsRepositoryI
	streaks       StreakServiceI
	clk           clock.Clock
}

func NewReadinessService(readinessRepo repository.ReadinessRepositoryI, clientsRepo repository.ClientsRepositoryI, streaks StreakServiceI, clk clock.Clock) *ReadinessService {
	if readinessRepo == nil || clientsRepo == nil || streaks == nil {
		log.Fatal("on readiness service provided nil dependencies")
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return &ReadinessService{
		readinessRepo: readinessRepo,
		clientsRepo:   clientsRepo,
		streaks:       streaks,
		clk:           clk,
	}
}

func (serv *ReadinessService) Submit(ctx context.Context, req *SubmitReadinessRequest) (*SubmitReadinessResult, error) {
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			joined := errorvalues.ErrValidation
			for _, fieldErr := range validationError {
				joined = errors.Join(joined, fieldErr)
			}
			return nil, joined
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}

	date := clock.DateUTC(serv.clk.Now())
	if req.Date != nil {
		date = clock.DateUTC(*req.Date)
	}

	// All derivation happens in memory before the single upsert, so a
	// write failure leaves no partial state.
	score := computeReadinessScore(req)
	intensity := intensityForScore(score)
	note := composeCoachingNote(req, score, intensity)

	coachID := req.CoachID
	if coachID == nil {
		client, err := serv.clientsRepo.GetByID(ctx, req.ClientID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrClientNotFound) {
				return nil, err
			}
			return nil, errors.New("clients repository error: " + err.Error())
		}
		coachID = client.CoachID
	}

	assessment := &entity.ReadinessAssessment{
		ClientID:                req.ClientID,
		CoachID:                 coachID,
		AssessmentDate:          date,
		SleepQuality:            req.SleepQuality,
		SleepHours:              req.SleepHours,
		StressLevel:             req.StressLevel,
		MuscleSoreness:          req.MuscleSoreness,
		EnergyLevel:             req.EnergyLevel,
		Mood:                    req.Mood,
		RestingHeartRate:        req.RestingHeartRate,
		HRVScore:                req.HRVScore,
		ReadinessScore:          score,
		IntensityRecommendation: intensity,
		Recommendation:          note,
		PreferredPeakDay:        req.PreferredPeakDay,
	}
	if err := serv.readinessRepo.Upsert(ctx, assessment); err != nil {
		return nil, errors.New("readiness repository error: " + err.Error())
	}

	serv.streaks.UpdateStreak(ctx, req.ClientID, StreakTypeReadiness, date)

	return &SubmitReadinessResult{
		Assessment:     assessment,
		Score:          score,
		Intensity:      intensity,
		Recommendation: note,
	}, nil
}

func (serv *ReadinessService) GetByDate(ctx context.Context, clientID uuid.UUID, date time.Time) (*entity.ReadinessAssessment, error) {
	assessment, err := serv.readinessRepo.GetByClientAndDate(ctx, clientID, clock.DateUTC(date))
	if err != nil {
		return nil, errors.New("readiness repository error: " + err.Error())
	}
	return assessment, nil
}

func (serv *ReadinessService) GetRecent(ctx context.Context, clientID uuid.UUID, limit int) ([]entity.ReadinessAssessment, *ReadinessStats, error) {
	if limit <= 0 {
		limit = 7
	}
	assessments, err := serv.readinessRepo.GetRecent(ctx, clientID, limit)
	if err != nil {
		return nil, nil, errors.New("readiness repository error: " + err.Error())
	}

	stats := &ReadinessStats{}
	count := len(assessments)
	if count > 7 {
		count = 7
	}
	if count > 0 {
		sum := 0
		for _, a := range assessments[:count] {
			sum += a.ReadinessScore
		}
		avg := int(math.Round(float64(sum) / float64(count)))
		stats.Avg7d = &avg
	}
	if len(assessments) >= 2 {
		stats.Trend = assessments[0].ReadinessScore - assessments[1].ReadinessScore
	}
	if len(assessments) > 0 {
		stats.TodayScore = &assessments[0].ReadinessScore
		stats.TodayIntensity = &assessments[0].IntensityRecommendation
	}
	return assessments, stats, nil
}

// computeReadinessScore folds the present sub-scores into a 0-100 composite.
// Each present input is normalized to 0-100 and weighted; the weights of the
// present inputs are renormalized to sum to 1 so that partial data does not
// drag the composite toward the midpoint. No inputs at all yields 50.
func computeReadinessScore(req *SubmitReadinessRequest) int {
	var scores, weights []float64

	if req.SleepQuality != nil {
		scores = append(scores, float64(*req.SleepQuality)*10)
		weights = append(weights, 0.25)
	}
	if req.SleepHours != nil {
		// Optimal sleep is 7-9 hours, score peaks at 8h
		sleepScore := 100 - math.Abs(*req.SleepHours-8)*15
		scores = append(scores, math.Max(0, math.Min(100, sleepScore)))
		weights = append(weights, 0.10)
	}
	if req.EnergyLevel != nil {
		scores = append(scores, float64(*req.EnergyLevel)*10)
		weights = append(weights, 0.25)
	}
	if req.StressLevel != nil {
		// Inverse: high stress = low readiness
		scores = append(scores, float64(11-*req.StressLevel)*10)
		weights = append(weights, 0.15)
	}
	if req.MuscleSoreness != nil {
		// Inverse: high soreness = low readiness
		scores = append(scores, float64(11-*req.MuscleSoreness)*10)
		weights = append(weights, 0.15)
	}
	if req.Mood != nil {
		scores = append(scores, float64(*req.Mood)*10)
		weights = append(weights, 0.10)
	}

	if len(scores) == 0 {
		return 50
	}

	totalWeight := 0.0
	for _, w := range weights {
		totalWeight += w
	}
	weightedSum := 0.0
	for i := range scores {
		weightedSum += scores[i] * (weights[i] / totalWeight)
	}

	return int(math.Round(math.Max(0, math.Min(100, weightedSum))))
}

// intensityForScore is the step function from composite score to the
// recommended training load. Lower bounds are inclusive and the bands cover
// the whole 0-100 range.
func intensityForScore(score int) entity.Intensity {
	switch {
	case score >= 85:
		return entity.IntensityPeak
	case score >= 70:
		return entity.IntensityHard
	case score >= 55:
		return entity.IntensityModerate
	case score >= 40:
		return entity.IntensityEasy
	default:
		return entity.IntensityDeload
	}
}

var closingLines = map[entity.Intensity]string{
	entity.IntensityPeak:     "Push for PRs - your body is in peak condition.",
	entity.IntensityHard:     "Solid day for heavy work. Stay focused on good form.",
	entity.IntensityModerate: "Standard training day. Aim for your regular working weights.",
	entity.IntensityEasy:     "Keep the weights lighter today. Focus on technique and volume.",
	entity.IntensityDeload:   "Recovery mode activated. Light movement, stretching, or complete rest recommended.",
}

// composeCoachingNote builds the daily note from fixed rules. An external
// text-generation service may replace this wording, but the rule-based
// composer is the default and the correctness baseline.
func composeCoachingNote(req *SubmitReadinessRequest, score int, intensity entity.Intensity) string {
	var notes []string

	if req.SleepHours != nil && *req.SleepHours < 6 {
		notes = append(notes, "Sleep was below optimal. Consider a lighter session and prioritize recovery tonight.")
	} else if req.SleepHours != nil && *req.SleepHours >= 8 {
		notes = append(notes, "Great sleep recovery. Your body is primed for performance.")
	}

	if req.StressLevel != nil && *req.StressLevel >= 8 {
		notes = append(notes, "High stress detected. Training can help, but keep intensity controlled to avoid overreaching.")
	}

	if req.MuscleSoreness != nil && *req.MuscleSoreness >= 7 {
		notes = append(notes, "Significant soreness. Focus on mobility work and lighter loads to promote recovery.")
	}

	if score >= 80 {
		notes = append(notes, "Your readiness is excellent today - this is a great day to push your limits!")
	} else if score < 45 {
		notes = append(notes, "Your body needs more recovery. An active recovery session or rest day would be ideal.")
	}

	notes = append(notes, closingLines[intensity])
	return strings.Join(notes, " ")
}
