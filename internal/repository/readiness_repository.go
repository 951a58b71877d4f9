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

type ReadinessRepository struct {
	conn PgConnection
}

func NewReadinessRepo(conn PgConnection) *ReadinessRepository {
	if conn == nil {
		log.Fatal("on readiness repo provided nil connection")
	}
	return &ReadinessRepository{
		conn: conn,
	}
}

const readinessColumns = `id, client_id, coach_id, assessment_date, sleep_quality, sleep_hours, stress_level, muscle_soreness, energy_level, mood, resting_heart_rate, hrv_score, readiness_score, intensity_recommendation, recommendation, preferred_peak_day, created_at, updated_at`

func (repo *ReadinessRepository) Upsert(ctx context.Context, a *entity.ReadinessAssessment) error {
	row := repo.conn.QueryRow(
		ctx,
		`INSERT INTO daily_readiness (client_id, coach_id, assessment_date, sleep_quality, sleep_hours, stress_level, muscle_soreness, energy_level, mood, resting_heart_rate, hrv_score, readiness_score, intensity_recommendation, recommendation, preferred_peak_day)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (client_id, assessment_date) DO UPDATE SET
			coach_id = EXCLUDED.coach_id,
			sleep_quality = EXCLUDED.sleep_quality,
			sleep_hours = EXCLUDED.sleep_hours,
			stress_level = EXCLUDED.stress_level,
			muscle_soreness = EXCLUDED.muscle_soreness,
			energy_level = EXCLUDED.energy_level,
			mood = EXCLUDED.mood,
			resting_heart_rate = EXCLUDED.resting_heart_rate,
			hrv_score = EXCLUDED.hrv_score,
			readiness_score = EXCLUDED.readiness_score,
			intensity_recommendation = EXCLUDED.intensity_recommendation,
			recommendation = EXCLUDED.recommendation,
			preferred_peak_day = EXCLUDED.preferred_peak_day,
			updated_at = now()
		RETURNING id, created_at, updated_at;`,
		a.ClientID,
		a.CoachID,
		a.AssessmentDate,
		a.SleepQuality,
		a.SleepHours,
		a.StressLevel,
		a.MuscleSoreness,
		a.EnergyLevel,
		a.Mood,
		a.RestingHeartRate,
		a.HRVScore,
		a.ReadinessScore,
		string(a.IntensityRecommendation),
		a.Recommendation,
		a.PreferredPeakDay,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return errors.New("upserting readiness error: " + err.Error())
	}
	return nil
}

func (repo *ReadinessRepository) GetByClientAndDate(ctx context.Context, clientID uuid.UUID, date time.Time) (*entity.ReadinessAssessment, error) {
	row := repo.conn.QueryRow(
		ctx,
		`SELECT `+readinessColumns+` FROM daily_readiness WHERE client_id = $1 AND assessment_date = $2;`,
		clientID,
		date,
	)
	a, err := scanReadiness(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting readiness by date error: " + err.Error())
	}
	return a, nil
}

func (repo *ReadinessRepository) GetRecent(ctx context.Context, clientID uuid.UUID, limit int) ([]entity.ReadinessAssessment, error) {
	rows, err := repo.conn.Query(
		ctx,
		`SELECT `+readinessColumns+` FROM daily_readiness WHERE client_id = $1 ORDER BY assessment_date DESC LIMIT $2;`,
		clientID,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting recent readiness error: " + err.Error())
	}
	return collectReadiness(rows)
}

func (repo *ReadinessRepository) GetSince(ctx context.Context, clientID uuid.UUID, from time.Time) ([]entity.ReadinessAssessment, error) {
	rows, err := repo.conn.Query(
		ctx,
		`SELECT `+readinessColumns+` FROM daily_readiness WHERE client_id = $1 AND assessment_date >= $2 ORDER BY assessment_date DESC;`,
		clientID,
		from,
	)
	if err != nil {
		return nil, errors.New("getting readiness since date error: " + err.Error())
	}
	return collectReadiness(rows)
}

func (repo *ReadinessRepository) GetPreferredPeakDay(ctx context.Context, clientID uuid.UUID) (*int, error) {
	row := repo.conn.QueryRow(
		ctx,
		`SELECT preferred_peak_day FROM daily_readiness WHERE client_id = $1 AND preferred_peak_day IS NOT NULL ORDER BY assessment_date DESC LIMIT 1;`,
		clientID,
	)
	var day int
	if err := row.Scan(&day); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting preferred peak day error: " + err.Error())
	}
	return &day, nil
}

func scanReadiness(row pgx.Row) (*entity.ReadinessAssessment, error) {
	a := entity.ReadinessAssessment{}
	var intensity string
	err := row.Scan(
		&a.ID,
		&a.ClientID,
		&a.CoachID,
		&a.AssessmentDate,
		&a.SleepQuality,
		&a.SleepHours,
		&a.StressLevel,
		&a.MuscleSoreness,
		&a.EnergyLevel,
		&a.Mood,
		&a.RestingHeartRate,
		&a.HRVScore,
		&a.ReadinessScore,
		&intensity,
		&a.Recommendation,
		&a.PreferredPeakDay,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.IntensityRecommendation = entity.Intensity(intensity)
	return &a, nil
}

func collectReadiness(rows pgx.Rows) ([]entity.ReadinessAssessment, error) {
	defer rows.Close()
	result := make([]entity.ReadinessAssessment, 0, 7)
	for rows.Next() {
		a, err := scanReadiness(rows)
		if err != nil {
			return nil, errors.New("readiness row parsing error: " + err.Error())
		}
		result = append(result, *a)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected readiness rows error: " + rows.Err().Error())
	}
	return result, nil
}
