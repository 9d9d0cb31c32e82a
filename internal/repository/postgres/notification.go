package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type notificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) repository.NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, n *domain.Notification) error {
	n.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx,
		`INSERT INTO notifications (user_id, message, is_read, created_on)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		n.UserID, n.Message, n.IsRead, n.CreatedOn).Scan(&n.ID)
}

func (r *notificationRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Notification, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, message, is_read, created_on
		 FROM notifications WHERE user_id = $1 ORDER BY created_on DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Message, &n.IsRead, &n.CreatedOn); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id, userID int32) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE notifications SET is_read = true WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFound("notification", strconv.Itoa(int(id)))
	}
	return nil
}
