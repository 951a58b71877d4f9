package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fernvaleriano/coachpilot/pkg/cleanup"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

type ReadinessRepositoryI interface {
	// Inserts or replaces the assessment for (client, date). Fills ID and
	// timestamps on the passed entity.
	Upsert(ctx context.Context, a *entity.ReadinessAssessment) error
	// Returns the assessment for the exact date, nil when absent
	GetByClientAndDate(ctx context.Context, clientID uuid.UUID, date time.Time) (*entity.ReadinessAssessment, error)
	// Lists most recent assessments, newest first
	GetRecent(ctx context.Context, clientID uuid.UUID, limit int) ([]entity.ReadinessAssessment, error)
	// Lists assessments on or after 'from', newest first
	GetSince(ctx context.Context, clientID uuid.UUID, from time.Time) ([]entity.ReadinessAssessment, error)
	// Returns the most recently stated preferred peak day, nil when never set
	GetPreferredPeakDay(ctx context.Context, clientID uuid.UUID) (*int, error)
}

type StreaksRepositoryI interface {
	// Returns the streak row for (client, type), nil when absent
	Get(ctx context.Context, clientID uuid.UUID, streakType string) (*entity.ClientStreak, error)
	// Inserts or replaces the streak row keyed by (client, type)
	Upsert(ctx context.Context, streak *entity.ClientStreak) error
}

type SchedulesRepositoryI interface {
	// Returns the schedule for (client, week start), nil when absent
	GetByClientAndWeek(ctx context.Context, clientID uuid.UUID, weekStart time.Time) (*entity.IntensitySchedule, error)
	// Inserts or replaces the schedule keyed by (client, week start)
	Upsert(ctx context.Context, schedule *entity.IntensitySchedule) error
}

// FlagsFilter narrows a triage flag listing. A nil Status means
// open + acknowledged.
type FlagsFilter struct {
	CoachID  *uuid.UUID
	ClientID *uuid.UUID
	Status   *entity.FlagStatus
}

type FlagsRepositoryI interface {
	// Inserts all flags of one detection run
	CreateBatch(ctx context.Context, flags []*entity.TriageFlag) error
	// Returns the flag types currently open or acknowledged for the client
	OpenFlagTypes(ctx context.Context, clientID uuid.UUID) (map[entity.FlagType]struct{}, error)
	// Looks up a flag by id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.TriageFlag, error)
	// Lists flags matching the filter, newest first
	List(ctx context.Context, filter FlagsFilter) ([]entity.TriageFlag, error)
	// Writes status, resolution notes and resolved-at of the flag
	UpdateStatus(ctx context.Context, flag *entity.TriageFlag) error
}

type WorkoutsRepositoryI interface {
	// Lists workouts on or after 'from', newest first
	GetSince(ctx context.Context, clientID uuid.UUID, from time.Time) ([]entity.WorkoutLog, error)
	// Lists most recent workouts, newest first
	GetRecent(ctx context.Context, clientID uuid.UUID, limit int) ([]entity.WorkoutLog, error)
	// Lists logged exercise sessions joined to their workout date, newest first
	GetExerciseHistory(ctx context.Context, clientID uuid.UUID, limit int) ([]entity.ExerciseSession, error)
	// Returns the client's active program name, empty when none
	GetActiveProgramName(ctx context.Context, clientID uuid.UUID) (string, error)
}

type CheckinsRepositoryI interface {
	// Lists check-ins on or after 'from', newest first
	GetSince(ctx context.Context, clientID uuid.UUID, from time.Time) ([]entity.CheckIn, error)
}

type ClientsRepositoryI interface {
	// Looks up a client by id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
}

type NotificationsRepositoryI interface {
	// Inserts one notification row
	Create(ctx context.Context, n *entity.Notification) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}

// NewPool opens a shared pgx pool for all repositories and registers its
// shutdown job.
func NewPool(cfg DBConfig) PgConnection {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection pool error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection pool: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return pool
}
