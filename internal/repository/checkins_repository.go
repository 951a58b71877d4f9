package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

type CheckinsRepository struct {
	conn PgConnection
}

func NewCheckinsRepo(conn PgConnection) *CheckinsRepository {
	if conn == nil {
		log.Fatal("on checkins repo provided nil connection")
	}
	return &CheckinsRepository{
		conn: conn,
	}
}

func (repo *CheckinsRepository) GetSince(ctx context.Context, clientID uuid.UUID, from time.Time) ([]entity.CheckIn, error) {
	rows, err := repo.conn.Query(
		ctx,
		`SELECT client_id, checkin_date, energy_level, sleep_quality, stress_level FROM client_checkins WHERE client_id = $1 AND checkin_date >= $2 ORDER BY checkin_date DESC;`,
		clientID,
		from,
	)
	if err != nil {
		return nil, errors.New("getting checkins since date error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.CheckIn, 0, 8)
	for rows.Next() {
		c := entity.CheckIn{}
		if err := rows.Scan(&c.ClientID, &c.CheckinDate, &c.EnergyLevel, &c.SleepQuality, &c.StressLevel); err != nil {
			return nil, errors.New("checkin row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected checkin rows error: " + rows.Err().Error())
	}
	return result, nil
}
