package postgres_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository/postgres"
)

func TestPaymentRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("pending payment carries no paid timestamp", func(t *testing.T) {
		p := &domain.Payment{
			OrderID: 12, Method: domain.PaymentMethodCOD,
			Amount: 2169, Status: domain.PaymentStatusPending,
		}

		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(int32(12), domain.PaymentMethodCOD, int32(2169), domain.PaymentStatusPending).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		err := repo.Create(ctx, p)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), p.ID)
		assert.True(t, p.PaidOn.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_MarkCompleted(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("stamps the paid timestamp", func(t *testing.T) {
		paidOn := time.Now()
		mock.ExpectQuery("UPDATE payments SET status").
			WithArgs(domain.PaymentStatusCompleted, sqlmock.AnyArg(), int32(12)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "method", "amount", "status", "paid_on"}).
				AddRow(3, 12, "COD", 2169, "completed", paidOn))

		p, err := repo.MarkCompleted(ctx, 12)
		assert.NoError(t, err)
		assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
		assert.Equal(t, paidOn, p.PaidOn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("order without a payment row is not found", func(t *testing.T) {
		mock.ExpectQuery("UPDATE payments SET status").
			WithArgs(domain.PaymentStatusCompleted, sqlmock.AnyArg(), int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "method", "amount", "status", "paid_on"}))

		_, err := repo.MarkCompleted(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewPaymentRepository(db)
	ctx := context.Background()

	t.Run("tolerates a null paid timestamp on pending rows", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, order_id, method, amount, status, paid_on FROM payments").
			WillReturnRows(sqlmock.NewRows([]string{"id", "order_id", "method", "amount", "status", "paid_on"}).
				AddRow(4, 13, "CARD", 500, "pending", nil).
				AddRow(3, 12, "COD", 2169, "completed", time.Now()))

		payments, err := repo.List(ctx)
		assert.NoError(t, err)
		assert.Len(t, payments, 2)
		assert.True(t, payments[0].PaidOn.IsZero())
		assert.False(t, payments[1].PaidOn.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
