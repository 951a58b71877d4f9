package repository

import (
	"context"
	"errors"
	"log"

	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

type NotificationsRepository struct {
	conn PgConnection
}

func NewNotificationsRepo(conn PgConnection) *NotificationsRepository {
	if conn == nil {
		log.Fatal("on notifications repo provided nil connection")
	}
	return &NotificationsRepository{
		conn: conn,
	}
}

func (repo *NotificationsRepository) Create(ctx context.Context, n *entity.Notification) error {
	_, err := repo.conn.Exec(
		ctx,
		`INSERT INTO notifications (user_id, type, title, message, related_client_id) VALUES ($1, $2, $3, $4, $5);`,
		n.UserID,
		n.Type,
		n.Title,
		n.Message,
		n.RelatedClientID,
	)
	if err != nil {
		return errors.New("creating notification error: " + err.Error())
	}
	return nil
}
