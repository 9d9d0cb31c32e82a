package service

import (
	"context"

	"github.com/gosimple/slug"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(ctx context.Context, title, image string) (*domain.Category, error) {
	var v domain.Validator
	v.Require("title", title)
	if err := v.Err(); err != nil {
		return nil, err
	}

	cat := &domain.Category{
		Title: title,
		Slug:  slug.Make(title),
		Image: image,
	}
	if err := s.categoryRepo.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *categoryService) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	return s.categoryRepo.GetBySlug(ctx, slug)
}
