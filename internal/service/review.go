package service

import (
	"context"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type reviewService struct {
	reviewRepo repository.ReviewRepository
	itemRepo   repository.ItemRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, itemRepo repository.ItemRepository) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		itemRepo:   itemRepo,
	}
}

func (s *reviewService) AddReview(ctx context.Context, review *domain.Review) error {
	var v domain.Validator
	v.Check(review.Rating >= 1 && review.Rating <= 5, "rating", "must be between 1 and 5")
	v.Require("comment", review.Comment)
	if err := v.Err(); err != nil {
		return err
	}
	if _, err := s.itemRepo.GetByID(ctx, review.ItemID); err != nil {
		return err
	}
	return s.reviewRepo.Create(ctx, review)
}

func (s *reviewService) ListReviews(ctx context.Context, itemID int32) ([]domain.Review, error) {
	return s.reviewRepo.ListByItem(ctx, itemID)
}
