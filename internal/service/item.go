package service

import (
	"context"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
	"rentkart-backend/internal/utils"
)

type itemService struct {
	itemRepo  repository.ItemRepository
	orderRepo repository.OrderRepository
}

func NewItemService(itemRepo repository.ItemRepository, orderRepo repository.OrderRepository) ItemService {
	return &itemService{
		itemRepo:  itemRepo,
		orderRepo: orderRepo,
	}
}

func (s *itemService) CreateItem(ctx context.Context, item *domain.Item) error {
	var v domain.Validator
	v.Require("title", item.Title)
	v.Check(item.Pricing.PerDay > 0, "price_per_day", "must be greater than zero")
	v.Check(item.Quantity >= 0, "quantity", "must not be negative")
	if err := v.Err(); err != nil {
		return err
	}
	return s.itemRepo.Create(ctx, item)
}

func (s *itemService) GetItem(ctx context.Context, id int32) (*domain.Item, error) {
	return s.itemRepo.GetByID(ctx, id)
}

func (s *itemService) UpdateItem(ctx context.Context, userID int32, item *domain.Item) error {
	existing, err := s.itemRepo.GetByID(ctx, item.ID)
	if err != nil {
		return err
	}
	if existing.OwnerID != userID {
		return domain.ErrForbidden
	}
	item.OwnerID = existing.OwnerID
	return s.itemRepo.Update(ctx, item)
}

func (s *itemService) DeleteItem(ctx context.Context, userID, itemID int32) error {
	existing, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if existing.OwnerID != userID {
		return domain.ErrForbidden
	}
	return s.itemRepo.Delete(ctx, itemID)
}

func (s *itemService) ListItems(ctx context.Context, location string) ([]domain.Item, error) {
	return s.itemRepo.List(ctx, location)
}

func (s *itemService) ListFeatured(ctx context.Context, location string) ([]domain.Item, error) {
	return s.itemRepo.ListFeatured(ctx, location, 8)
}

func (s *itemService) ListMyItems(ctx context.Context, ownerID int32) ([]domain.Item, error) {
	return s.itemRepo.ListByOwner(ctx, ownerID)
}

func (s *itemService) CheckAvailability(ctx context.Context, itemID int32, startDate, endDate string) (bool, error) {
	var v domain.Validator
	v.Check(itemID > 0, "item_id", "is required")
	v.Require("start_date", startDate)
	v.Require("end_date", endDate)
	if _, err := utils.ParseRentalDate(startDate); startDate != "" && err != nil {
		v.Check(false, "start_date", "must be a date in YYYY-MM-DD format")
	}
	if _, err := utils.ParseRentalDate(endDate); endDate != "" && err != nil {
		v.Check(false, "end_date", "must be a date in YYYY-MM-DD format")
	}
	if err := v.Err(); err != nil {
		return false, err
	}

	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return false, err
	}

	overlapping, err := s.orderRepo.HasOverlapping(ctx, itemID, startDate, endDate)
	if err != nil {
		return false, err
	}
	return !overlapping, nil
}
