package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(conn PgConnection) *StreaksRepository {
	if conn == nil {
		log.Fatal("on streaks repo provided nil connection")
	}
	return &StreaksRepository{
		conn: conn,
	}
}

func (repo *StreaksRepository) Get(ctx context.Context, clientID uuid.UUID, streakType string) (*entity.ClientStreak, error) {
	row := repo.conn.QueryRow(
		ctx,
		`SELECT client_id, streak_type, current_streak, longest_streak, last_activity_date FROM client_streaks WHERE client_id = $1 AND streak_type = $2;`,
		clientID,
		streakType,
	)
	streak := entity.ClientStreak{}
	err := row.Scan(&streak.ClientID, &streak.StreakType, &streak.CurrentStreak, &streak.LongestStreak, &streak.LastActivityDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting streak error: " + err.Error())
	}
	return &streak, nil
}

func (repo *StreaksRepository) Upsert(ctx context.Context, streak *entity.ClientStreak) error {
	_, err := repo.conn.Exec(
		ctx,
		`INSERT INTO client_streaks (client_id, streak_type, current_streak, longest_streak, last_activity_date)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (client_id, streak_type) DO UPDATE SET
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			last_activity_date = EXCLUDED.last_activity_date;`,
		streak.ClientID,
		streak.StreakType,
		streak.CurrentStreak,
		streak.LongestStreak,
		streak.LastActivityDate,
	)
	if err != nil {
		return errors.New("upserting streak error: " + err.Error())
	}
	return nil
}
