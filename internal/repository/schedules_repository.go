package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

type SchedulesRepository struct {
	conn PgConnection
}

func NewSchedulesRepo(conn PgConnection) *SchedulesRepository {
	if conn == nil {
		log.Fatal("on schedules repo provided nil connection")
	}
	return &SchedulesRepository{
		conn: conn,
	}
}

func (repo *SchedulesRepository) GetByClientAndWeek(ctx context.Context, clientID uuid.UUID, weekStart time.Time) (*entity.IntensitySchedule, error) {
	row := repo.conn.QueryRow(
		ctx,
		`SELECT id, client_id, week_start_date, schedule_data, was_auto_adjusted, adjustment_reason, original_schedule, created_at, updated_at FROM workout_intensity_schedule WHERE client_id = $1 AND week_start_date = $2;`,
		clientID,
		weekStart,
	)
	s := entity.IntensitySchedule{}
	var scheduleRaw, originalRaw []byte
	err := row.Scan(&s.ID, &s.ClientID, &s.WeekStartDate, &scheduleRaw, &s.WasAutoAdjusted, &s.AdjustmentReason, &originalRaw, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting schedule error: " + err.Error())
	}
	if err := sonic.ConfigDefault.Unmarshal(scheduleRaw, &s.ScheduleData); err != nil {
		return nil, errors.New("schedule data parsing error: " + err.Error())
	}
	if len(originalRaw) > 0 {
		if err := sonic.ConfigDefault.Unmarshal(originalRaw, &s.OriginalSchedule); err != nil {
			return nil, errors.New("original schedule parsing error: " + err.Error())
		}
	}
	return &s, nil
}

func (repo *SchedulesRepository) Upsert(ctx context.Context, schedule *entity.IntensitySchedule) error {
	scheduleRaw, err := sonic.ConfigDefault.Marshal(schedule.ScheduleData)
	if err != nil {
		return errors.New("schedule data encoding error: " + err.Error())
	}
	var originalRaw []byte
	if schedule.OriginalSchedule != nil {
		originalRaw, err = sonic.ConfigDefault.Marshal(schedule.OriginalSchedule)
		if err != nil {
			return errors.New("original schedule encoding error: " + err.Error())
		}
	}
	_, err = repo.conn.Exec(
		ctx,
		`INSERT INTO workout_intensity_schedule (client_id, week_start_date, schedule_data, was_auto_adjusted, adjustment_reason, original_schedule)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (client_id, week_start_date) DO UPDATE SET
			schedule_data = EXCLUDED.schedule_data,
			was_auto_adjusted = EXCLUDED.was_auto_adjusted,
			adjustment_reason = EXCLUDED.adjustment_reason,
			original_schedule = EXCLUDED.original_schedule,
			updated_at = now();`,
		schedule.ClientID,
		schedule.WeekStartDate,
		scheduleRaw,
		schedule.WasAutoAdjusted,
		schedule.AdjustmentReason,
		originalRaw,
	)
	if err != nil {
		return errors.New("upserting schedule error: " + err.Error())
	}
	return nil
}
