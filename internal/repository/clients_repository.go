package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	errorvalues "github.com/fernvaleriano/coachpilot/internal/error_values"
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

type ClientsRepository struct {
	conn PgConnection
}

func NewClientsRepo(conn PgConnection) *ClientsRepository {
	if conn == nil {
		log.Fatal("on clients repo provided nil connection")
	}
	return &ClientsRepository{
		conn: conn,
	}
}

func (repo *ClientsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	row := repo.conn.QueryRow(
		ctx,
		`SELECT id, coach_id, client_name, email FROM clients WHERE id = $1;`,
		id,
	)
	c := entity.Client{}
	err := row.Scan(&c.ID, &c.CoachID, &c.Name, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrClientNotFound
		}
		return nil, errors.New("getting client error: " + err.Error())
	}
	return &c, nil
}
