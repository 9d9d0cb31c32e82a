package service

import (
	"context"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	itemRepo     repository.ItemRepository
}

func NewWishlistService(wishlistRepo repository.WishlistRepository, itemRepo repository.ItemRepository) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		itemRepo:     itemRepo,
	}
}

func (s *wishlistService) AddItem(ctx context.Context, userID, itemID int32) error {
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return err
	}
	return s.wishlistRepo.Add(ctx, userID, itemID)
}

func (s *wishlistService) RemoveItem(ctx context.Context, userID, itemID int32) error {
	return s.wishlistRepo.Remove(ctx, userID, itemID)
}

func (s *wishlistService) GetWishlist(ctx context.Context, userID int32) (*domain.Wishlist, error) {
	items, err := s.wishlistRepo.ListItems(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return &domain.Wishlist{UserID: userID, Items: items}, nil
}
