package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReadinessAssessment is one daily check-in per (client, day). Score,
// recommendation and the coaching note are derived fields, recomputed and
// overwritten on every submission for that day.
type ReadinessAssessment struct {
	ID                      int64      `json:"id"`
	ClientID                uuid.UUID  `json:"client_id"`
	CoachID                 *uuid.UUID `json:"coach_id,omitempty"`
	AssessmentDate          time.Time  `json:"assessment_date"`
	SleepQuality            *int       `json:"sleep_quality,omitempty"`
	SleepHours              *float64   `json:"sleep_hours,omitempty"`
	StressLevel             *int       `json:"stress_level,omitempty"`
	MuscleSoreness          *int       `json:"muscle_soreness,omitempty"`
	EnergyLevel             *int       `json:"energy_level,omitempty"`
	Mood                    *int       `json:"mood,omitempty"`
	RestingHeartRate        *int       `json:"resting_heart_rate,omitempty"`
	HRVScore                *int       `json:"hrv_score,omitempty"`
	ReadinessScore          int        `json:"readiness_score"`
	IntensityRecommendation Intensity  `json:"intensity_recommendation"`
	Recommendation          string     `json:"recommendation"`
	PreferredPeakDay        *int       `json:"preferred_peak_day,omitempty"`
	CreatedAt               time.Time  `json:"created_at"`
	UpdatedAt               time.Time  `json:"updated_at"`
}

// ClientStreak counts consecutive activity days per (client, streak type).
// LongestStreak never goes below CurrentStreak.
type ClientStreak struct {
	ClientID         uuid.UUID `json:"client_id"`
	StreakType       string    `json:"streak_type"`
	CurrentStreak    int       `json:"current_streak"`
	LongestStreak    int       `json:"longest_streak"`
	LastActivityDate time.Time `json:"last_activity_date"`
}

// DayPlan is a single day entry of a weekly intensity schedule.
type DayPlan struct {
	Day       int       `json:"day"`
	Intensity Intensity `json:"intensity"`
	Focus     string    `json:"focus"`
	Notes     string    `json:"notes"`
}

// IntensitySchedule is the 7-day plan for one (client, week). WeekStartDate
// is the Sunday of the week in UTC. OriginalSchedule holds the pre-adjustment
// plan, snapshotted once per replan.
type IntensitySchedule struct {
	ID               int64     `json:"id"`
	ClientID         uuid.UUID `json:"client_id"`
	WeekStartDate    time.Time `json:"week_start_date"`
	ScheduleData     []DayPlan `json:"schedule_data"`
	WasAutoAdjusted  bool      `json:"was_auto_adjusted"`
	AdjustmentReason *string   `json:"adjustment_reason,omitempty"`
	OriginalSchedule []DayPlan `json:"original_schedule,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type FlagType string

const (
	FlagMissedWorkouts FlagType = "missed_workouts"
	FlagLowMotivation  FlagType = "low_motivation"
	FlagOvertraining   FlagType = "overtraining"
	FlagPlateau        FlagType = "plateau"
)

type FlagSeverity string

const (
	SeverityLow    FlagSeverity = "low"
	SeverityMedium FlagSeverity = "medium"
	SeverityHigh   FlagSeverity = "high"
)

type FlagStatus string

const (
	FlagOpen         FlagStatus = "open"
	FlagAcknowledged FlagStatus = "acknowledged"
	FlagResolved     FlagStatus = "resolved"
	FlagDismissed    FlagStatus = "dismissed"
)

// Terminal reports whether no further transition is allowed from the status.
func (s FlagStatus) Terminal() bool {
	return s == FlagResolved || s == FlagDismissed
}

// TriageFlag is a coach-facing alert produced by one detector run.
type TriageFlag struct {
	ID              uuid.UUID      `json:"id"`
	ClientID        uuid.UUID      `json:"client_id"`
	CoachID         uuid.UUID      `json:"coach_id"`
	FlagType        FlagType       `json:"flag_type"`
	Severity        FlagSeverity   `json:"severity"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Suggestion      string         `json:"suggestion"`
	ContextData     map[string]any `json:"context_data,omitempty"`
	Status          FlagStatus     `json:"status"`
	ResolutionNotes *string        `json:"resolution_notes,omitempty"`
	ResolvedAt      *time.Time     `json:"resolved_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

// WorkoutLog is a read-only view of a logged workout used by the scheduler
// and the triage detectors.
type WorkoutLog struct {
	ClientID        uuid.UUID `json:"client_id"`
	WorkoutDate     time.Time `json:"workout_date"`
	WorkoutName     string    `json:"workout_name"`
	Status          string    `json:"status"`
	WorkoutRating   *int      `json:"workout_rating,omitempty"`
	EnergyLevel     *int      `json:"energy_level,omitempty"`
	TotalVolume     *float64  `json:"total_volume,omitempty"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
}

// ExerciseSession is one logged exercise occurrence with its top set weight,
// joined to the parent workout's date. Used by the plateau detector.
type ExerciseSession struct {
	ExerciseName string    `json:"exercise_name"`
	MaxWeight    float64   `json:"max_weight"`
	WorkoutDate  time.Time `json:"workout_date"`
}

// CheckIn is a read-only view of a general client check-in.
type CheckIn struct {
	ClientID     uuid.UUID `json:"client_id"`
	CheckinDate  time.Time `json:"checkin_date"`
	EnergyLevel  *int      `json:"energy_level,omitempty"`
	SleepQuality *int      `json:"sleep_quality,omitempty"`
	StressLevel  *int      `json:"stress_level,omitempty"`
}

type Client struct {
	ID      uuid.UUID  `json:"id"`
	CoachID *uuid.UUID `json:"coach_id,omitempty"`
	Name    string     `json:"name"`
	Email   string     `json:"email"`
}

// Notification is an outbound coach notification record. Delivery beyond the
// row insert is handled elsewhere.
type Notification struct {
	UserID          uuid.UUID `json:"user_id"`
	Type            string    `json:"type"`
	Title           string    `json:"title"`
	Message         string    `json:"message"`
	RelatedClientID uuid.UUID `json:"related_client_id"`
}
