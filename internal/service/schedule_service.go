package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/fernvaleriano/coachpilot/internal/planner"
	"github.com/fernvaleriano/coachpilot/internal/repository"
	"github.com/fernvaleriano/coachpilot/pkg/clock"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

// replanDriftThreshold is the minimum ladder distance between the planned and
// the recommended intensity for today before the week is re-planned.
const replanDriftThreshold = 2

// defaultPeakDay is Saturday, used when the client never stated a preference.
const defaultPeakDay = 6

type ScheduleService struct {
	schedulesRepo repository.SchedulesRepositoryI
	readinessRepo repository.ReadinessRepositoryI
	workoutsRepo  repository.WorkoutsRepositoryI
	plannerClient planner.Client
	clk           clock.Clock
}

// NewScheduleService wires the scheduler. plannerClient may be nil; the
// service then always plans deterministically.
func NewScheduleService(schedulesRepo repository.SchedulesRepositoryI, readinessRepo repository.ReadinessRepositoryI,
	workoutsRepo repository.WorkoutsRepositoryI, plannerClient planner.Client, clk clock.Clock) *ScheduleService {
	if schedulesRepo == nil || readinessRepo == nil || workoutsRepo == nil {
		log.Fatal("on schedule service provided nil dependencies")
	}
	if clk == nil {
		clk = clock.Real{}
	}
	return &ScheduleService{
		schedulesRepo: schedulesRepo,
		readinessRepo: readinessRepo,
		workoutsRepo:  workoutsRepo,
		plannerClient: plannerClient,
		clk:           clk,
	}
}

func (serv *ScheduleService) GetWeekly(ctx context.Context, clientID uuid.UUID) (*WeeklyScheduleView, error) {
	today := clock.DateUTC(serv.clk.Now())
	weekStart := clock.WeekStart(today)

	schedule, err := serv.schedulesRepo.GetByClientAndWeek(ctx, clientID, weekStart)
	if err != nil {
		return nil, errors.New("schedules repository error: " + err.Error())
	}

	readiness, err := serv.readinessRepo.GetByClientAndDate(ctx, clientID, today)
	if err != nil {
		return nil, errors.New("readiness repository error: " + err.Error())
	}

	view := &WeeklyScheduleView{
		TodayReadiness: readiness,
		WeekStart:      weekStart,
	}
	if schedule != nil {
		view.Schedule = schedule.ScheduleData
		view.WasAutoAdjusted = schedule.WasAutoAdjusted
		view.AdjustmentReason = schedule.AdjustmentReason
	}
	return view, nil
}

func (serv *ScheduleService) Ensure(ctx context.Context, clientID uuid.UUID, forceReplan bool) (*EnsureScheduleResult, error) {
	today := clock.DateUTC(serv.clk.Now())
	weekStart := clock.WeekStart(today)
	todayDow := int(today.Weekday())

	recent, err := serv.readinessRepo.GetRecent(ctx, clientID, 7)
	if err != nil {
		return nil, errors.New("readiness repository error: " + err.Error())
	}

	var todayReadiness *entity.ReadinessAssessment
	for i := range recent {
		if clock.DateUTC(recent[i].AssessmentDate).Equal(today) {
			todayReadiness = &recent[i]
			break
		}
	}

	var avgReadiness *int
	if len(recent) > 0 {
		sum := 0
		for _, a := range recent {
			sum += a.ReadinessScore
		}
		avg := int(math.Round(float64(sum) / float64(len(recent))))
		avgReadiness = &avg
	}

	existing, err := serv.schedulesRepo.GetByClientAndWeek(ctx, clientID, weekStart)
	if err != nil {
		return nil, errors.New("schedules repository error: " + err.Error())
	}

	shouldReplan := forceReplan || existing == nil

	if !shouldReplan && todayReadiness != nil {
		for _, planned := range existing.ScheduleData {
			if planned.Day != todayDow {
				continue
			}
			drift := planned.Intensity.Distance(todayReadiness.IntensityRecommendation)
			if drift >= replanDriftThreshold {
				shouldReplan = true
			}
			break
		}
	}

	if !shouldReplan {
		return &EnsureScheduleResult{
			Schedule:         existing.ScheduleData,
			WasAutoAdjusted:  existing.WasAutoAdjusted,
			AdjustmentReason: existing.AdjustmentReason,
			ReplanTriggered:  false,
		}, nil
	}

	preferredPeakDay, err := serv.readinessRepo.GetPreferredPeakDay(ctx, clientID)
	if err != nil {
		return nil, errors.New("readiness repository error: " + err.Error())
	}

	schedule := serv.buildPlan(ctx, clientID, planContext{
		today:            today,
		todayDow:         todayDow,
		weekStart:        weekStart,
		avgReadiness:     avgReadiness,
		todayReadiness:   todayReadiness,
		readinessTrend:   recent,
		preferredPeakDay: preferredPeakDay,
	})

	wasAutoAdjusted := existing != nil && !forceReplan
	triggerScore := 0
	if todayReadiness != nil {
		triggerScore = todayReadiness.ReadinessScore
	} else if avgReadiness != nil {
		triggerScore = *avgReadiness
	}

	record := &entity.IntensitySchedule{
		ClientID:        clientID,
		WeekStartDate:   weekStart,
		ScheduleData:    schedule,
		WasAutoAdjusted: wasAutoAdjusted,
	}
	var reason *string
	if wasAutoAdjusted {
		r := fmt.Sprintf("Auto-adjusted based on readiness score of %d", triggerScore)
		record.AdjustmentReason = &r
		responseReason := fmt.Sprintf("Plan adjusted - your readiness of %d triggered a re-plan", triggerScore)
		reason = &responseReason
	}
	if existing != nil {
		record.OriginalSchedule = existing.ScheduleData
	}

	if err := serv.schedulesRepo.Upsert(ctx, record); err != nil {
		return nil, errors.New("schedules repository error: " + err.Error())
	}

	return &EnsureScheduleResult{
		Schedule:         schedule,
		WasAutoAdjusted:  wasAutoAdjusted,
		AdjustmentReason: reason,
		ReplanTriggered:  true,
	}, nil
}

type planContext struct {
	today            time.Time
	todayDow         int
	weekStart        time.Time
	avgReadiness     *int
	todayReadiness   *entity.ReadinessAssessment
	readinessTrend   []entity.ReadinessAssessment
	preferredPeakDay *int
}

// buildPlan asks the external planner first and falls back to the template
// algorithm on any failure. The fallback can never fail.
func (serv *ScheduleService) buildPlan(ctx context.Context, clientID uuid.UUID, pc planContext) []entity.DayPlan {
	if serv.plannerClient != nil {
		if plan, err := serv.plannerGenerate(ctx, clientID, pc); err == nil {
			return plan
		} else {
			slog.Warn("planner unavailable, using fallback schedule",
				slog.String("client_id", clientID.String()), slog.String("error", err.Error()))
		}
	}

	peakDay := defaultPeakDay
	if pc.preferredPeakDay != nil {
		peakDay = *pc.preferredPeakDay
	}
	var todayIntensity entity.Intensity
	if pc.todayReadiness != nil {
		todayIntensity = pc.todayReadiness.IntensityRecommendation
	}
	return generateFallbackSchedule(pc.avgReadiness, peakDay, pc.todayDow, todayIntensity)
}

func (serv *ScheduleService) plannerGenerate(ctx context.Context, clientID uuid.UUID, pc planContext) ([]entity.DayPlan, error) {
	workouts, err := serv.workoutsRepo.GetRecent(ctx, clientID, 14)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}
	program, err := serv.workoutsRepo.GetActiveProgramName(ctx, clientID)
	if err != nil {
		return nil, errors.New("workouts repository error: " + err.Error())
	}

	req := planner.PlanRequest{
		Today:            pc.today,
		TodayDow:         pc.todayDow,
		WeekStart:        pc.weekStart,
		AvgReadiness:     pc.avgReadiness,
		ActiveProgram:    program,
		PreferredPeakDay: pc.preferredPeakDay,
	}
	if pc.todayReadiness != nil {
		req.TodayScore = &pc.todayReadiness.ReadinessScore
		req.TodayIntensity = pc.todayReadiness.IntensityRecommendation
	}
	for _, a := range pc.readinessTrend {
		req.ReadinessTrend = append(req.ReadinessTrend, planner.TrendPoint{
			Date:  a.AssessmentDate,
			Score: a.ReadinessScore,
		})
	}
	for _, w := range workouts {
		req.RecentWorkouts = append(req.RecentWorkouts, planner.WorkoutSummary{
			Date:   w.WorkoutDate,
			Name:   w.WorkoutName,
			Rating: w.WorkoutRating,
		})
	}

	return serv.plannerClient.GeneratePlan(ctx, req)
}
