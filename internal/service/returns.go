package service

import (
	"context"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type returnService struct {
	returnRepo repository.ReturnRequestRepository
	orderRepo  repository.OrderRepository
}

func NewReturnService(returnRepo repository.ReturnRequestRepository, orderRepo repository.OrderRepository) ReturnService {
	return &returnService{
		returnRepo: returnRepo,
		orderRepo:  orderRepo,
	}
}

func (s *returnService) RequestReturn(ctx context.Context, userID, orderID int32, reason string) (*domain.ReturnRequest, error) {
	var v domain.Validator
	v.Require("reason", reason)
	if err := v.Err(); err != nil {
		return nil, err
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.RenterID != userID {
		return nil, domain.ErrForbidden
	}

	req := &domain.ReturnRequest{
		OrderID: orderID,
		UserID:  userID,
		Reason:  reason,
		Status:  domain.ReturnStatusPending,
	}
	if err := s.returnRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *returnService) ListReturnRequests(ctx context.Context) ([]domain.ReturnRequest, error) {
	return s.returnRepo.List(ctx)
}
