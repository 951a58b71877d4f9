package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

// WorkoutsRepository reads workout and exercise history. The engine never
// writes to these tables; workout logging lives elsewhere.
type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(conn PgConnection) *WorkoutsRepository {
	if conn == nil {
		log.Fatal("on workouts repo provided nil connection")
	}
	return &WorkoutsRepository{
		conn: conn,
	}
}

const workoutColumns = `client_id, workout_date, workout_name, status, workout_rating, energy_level, total_volume, duration_minutes`

func (repo *WorkoutsRepository) GetSince(ctx context.Context, clientID uuid.UUID, from time.Time) ([]entity.WorkoutLog, error) {
	rows, err := repo.conn.Query(
		ctx,
		`SELECT `+workoutColumns+` FROM workout_logs WHERE client_id = $1 AND workout_date >= $2 ORDER BY workout_date DESC;`,
		clientID,
		from,
	)
	if err != nil {
		return nil, errors.New("getting workouts since date error: " + err.Error())
	}
	return collectWorkouts(rows)
}

func (repo *WorkoutsRepository) GetRecent(ctx context.Context, clientID uuid.UUID, limit int) ([]entity.WorkoutLog, error) {
	rows, err := repo.conn.Query(
		ctx,
		`SELECT `+workoutColumns+` FROM workout_logs WHERE client_id = $1 ORDER BY workout_date DESC LIMIT $2;`,
		clientID,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting recent workouts error: " + err.Error())
	}
	return collectWorkouts(rows)
}

func (repo *WorkoutsRepository) GetExerciseHistory(ctx context.Context, clientID uuid.UUID, limit int) ([]entity.ExerciseSession, error) {
	rows, err := repo.conn.Query(
		ctx,
		`SELECT el.exercise_name, el.max_weight, wl.workout_date
		FROM exercise_logs el
		JOIN workout_logs wl ON wl.id = el.workout_log_id
		WHERE wl.client_id = $1
		ORDER BY wl.workout_date DESC
		LIMIT $2;`,
		clientID,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting exercise history error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.ExerciseSession, 0, 16)
	for rows.Next() {
		session := entity.ExerciseSession{}
		if err := rows.Scan(&session.ExerciseName, &session.MaxWeight, &session.WorkoutDate); err != nil {
			return nil, errors.New("exercise session row parsing error: " + err.Error())
		}
		result = append(result, session)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected exercise session rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (repo *WorkoutsRepository) GetActiveProgramName(ctx context.Context, clientID uuid.UUID) (string, error) {
	row := repo.conn.QueryRow(
		ctx,
		`SELECT name FROM client_workout_assignments WHERE client_id = $1 AND is_active = true ORDER BY created_at DESC LIMIT 1;`,
		clientID,
	)
	var name string
	if err := row.Scan(&name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", errors.New("getting active program error: " + err.Error())
	}
	return name, nil
}

func collectWorkouts(rows pgx.Rows) ([]entity.WorkoutLog, error) {
	defer rows.Close()
	result := make([]entity.WorkoutLog, 0, 8)
	for rows.Next() {
		w := entity.WorkoutLog{}
		err := rows.Scan(&w.ClientID, &w.WorkoutDate, &w.WorkoutName, &w.Status, &w.WorkoutRating, &w.EnergyLevel, &w.TotalVolume, &w.DurationMinutes)
		if err != nil {
			return nil, errors.New("workout row parsing error: " + err.Error())
		}
		result = append(result, w)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected workout rows error: " + rows.Err().Error())
	}
	return result, nil
}
