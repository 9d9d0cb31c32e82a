package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type returnRequestRepository struct {
	db *sql.DB
}

func NewReturnRequestRepository(db *sql.DB) repository.ReturnRequestRepository {
	return &returnRequestRepository{db: db}
}

func (r *returnRequestRepository) Create(ctx context.Context, rr *domain.ReturnRequest) error {
	rr.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx,
		`INSERT INTO return_requests (order_id, user_id, reason, status, created_on)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		rr.OrderID, rr.UserID, rr.Reason, rr.Status, rr.CreatedOn).Scan(&rr.ID)
}

func (r *returnRequestRepository) List(ctx context.Context) ([]domain.ReturnRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, order_id, user_id, reason, status, created_on FROM return_requests ORDER BY created_on DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.ReturnRequest
	for rows.Next() {
		var rr domain.ReturnRequest
		if err := rows.Scan(&rr.ID, &rr.OrderID, &rr.UserID, &rr.Reason, &rr.Status, &rr.CreatedOn); err != nil {
			return nil, err
		}
		requests = append(requests, rr)
	}
	return requests, rows.Err()
}
