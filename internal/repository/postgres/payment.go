package postgres

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Create records the payment row. paid_on stays NULL until
// MarkCompleted stamps it.
func (r *paymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	return r.db.QueryRowContext(ctx,
		`INSERT INTO payments (order_id, method, amount, status)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		p.OrderID, p.Method, p.Amount, p.Status).Scan(&p.ID)
}

func (r *paymentRepository) MarkCompleted(ctx context.Context, orderID int32) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.QueryRowContext(ctx,
		`UPDATE payments SET status = $1, paid_on = $2
		 WHERE order_id = $3
		 RETURNING id, order_id, method, amount, status, paid_on`,
		domain.PaymentStatusCompleted, time.Now(), orderID).
		Scan(&p.ID, &p.OrderID, &p.Method, &p.Amount, &p.Status, &p.PaidOn)
	if err == sql.ErrNoRows {
		return nil, domain.NewNotFound("payment", strconv.Itoa(int(orderID)))
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, order_id, method, amount, status, paid_on FROM payments ORDER BY id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		var paidOn sql.NullTime
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Method, &p.Amount, &p.Status, &paidOn); err != nil {
			return nil, err
		}
		p.PaidOn = paidOn.Time
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
