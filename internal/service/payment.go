package service

import (
	"context"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	orderRepo   repository.OrderRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository, orderRepo repository.OrderRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo, orderRepo: orderRepo}
}

// RecordPayment marks the order's payment as completed. Only the renter
// who placed the order may record it.
func (s *paymentService) RecordPayment(ctx context.Context, userID, orderID int32) (*domain.Payment, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RenterID != userID {
		return nil, domain.ErrForbidden
	}
	return s.paymentRepo.MarkCompleted(ctx, orderID)
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}
