package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fernvaleriano/coachpilot/internal/repository"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

// SubmitReadinessRequest carries one daily check-in. Every sub-score is
// optional; a client may skip any question.
type SubmitReadinessRequest struct {
	ClientID         uuid.UUID `validate:"required"`
	CoachID          *uuid.UUID
	Date             *time.Time
	SleepQuality     *int     `validate:"omitempty,min=1,max=10"`
	SleepHours       *float64 `validate:"omitempty,gte=0,lte=24"`
	StressLevel      *int     `validate:"omitempty,min=1,max=10"`
	MuscleSoreness   *int     `validate:"omitempty,min=1,max=10"`
	EnergyLevel      *int     `validate:"omitempty,min=1,max=10"`
	Mood             *int     `validate:"omitempty,min=1,max=10"`
	RestingHeartRate *int     `validate:"omitempty,min=20,max=250"`
	HRVScore         *int     `validate:"omitempty,min=0,max=200"`
	PreferredPeakDay *int     `validate:"omitempty,min=0,max=6"`
}

type SubmitReadinessResult struct {
	Assessment     *entity.ReadinessAssessment `json:"readiness"`
	Score          int                         `json:"score"`
	Intensity      entity.Intensity            `json:"intensity"`
	Recommendation string                      `json:"recommendation"`
}

// ReadinessStats summarizes recent assessments for the client dashboard.
type ReadinessStats struct {
	Avg7d          *int              `json:"avg7d"`
	Trend          int               `json:"trend"`
	TodayScore     *int              `json:"todayScore"`
	TodayIntensity *entity.Intensity `json:"todayIntensity"`
}

type ReadinessServiceI interface {
	// Computes score, recommendation and coaching note, upserts the
	// assessment for (client, date) and bumps the readiness streak
	Submit(ctx context.Context, req *SubmitReadinessRequest) (*SubmitReadinessResult, error)
	// Returns the assessment for the exact date, nil when absent
	GetByDate(ctx context.Context, clientID uuid.UUID, date time.Time) (*entity.ReadinessAssessment, error)
	// Lists the most recent assessments with summary stats
	GetRecent(ctx context.Context, clientID uuid.UUID, limit int) ([]entity.ReadinessAssessment, *ReadinessStats, error)
}

type StreakServiceI interface {
	// Applies one activity date to the (client, type) streak counter.
	// Failures are logged and swallowed: a streak update is a secondary
	// effect and must never block the primary operation.
	UpdateStreak(ctx context.Context, clientID uuid.UUID, streakType string, activityDate time.Time)
	// Returns the streak row, nil when the client has no streak yet
	GetStreak(ctx context.Context, clientID uuid.UUID, streakType string) (*entity.ClientStreak, error)
}

// WeeklyScheduleView is the read-only view of the current week's plan.
type WeeklyScheduleView struct {
	Schedule         []entity.DayPlan            `json:"schedule"`
	WasAutoAdjusted  bool                        `json:"wasAutoAdjusted"`
	AdjustmentReason *string                     `json:"adjustmentReason"`
	TodayReadiness   *entity.ReadinessAssessment `json:"todayReadiness"`
	WeekStart        time.Time                   `json:"weekStart"`
}

// EnsureScheduleResult reports the plan in force after an ensure call and
// whether this call replaced it.
type EnsureScheduleResult struct {
	Schedule         []entity.DayPlan `json:"schedule"`
	WasAutoAdjusted  bool             `json:"wasAutoAdjusted"`
	AdjustmentReason *string          `json:"adjustmentReason"`
	ReplanTriggered  bool             `json:"replanTriggered"`
}

type ScheduleServiceI interface {
	// Returns the stored plan for the current week without generating one
	GetWeekly(ctx context.Context, clientID uuid.UUID) (*WeeklyScheduleView, error)
	// Returns the plan for the current week, generating or replanning it
	// when forced, missing, or drifted from today's readiness
	Ensure(ctx context.Context, clientID uuid.UUID, forceReplan bool) (*EnsureScheduleResult, error)
}

type TriageServiceI interface {
	// Runs all detectors for the client and returns newly created flags
	Run(ctx context.Context, clientID uuid.UUID) ([]*entity.TriageFlag, error)
	// Lists flags matching the filter
	List(ctx context.Context, filter repository.FlagsFilter) ([]entity.TriageFlag, error)
	// Transitions a flag's status on coach action
	UpdateStatus(ctx context.Context, flagID uuid.UUID, status entity.FlagStatus, resolutionNotes *string) (*entity.TriageFlag, error)
}

// NotifierI delivers coach notifications for new flags. Implementations must
// swallow delivery failures; notification is decoupled from detection.
type NotifierI interface {
	NotifyFlag(ctx context.Context, flag *entity.TriageFlag)
}
