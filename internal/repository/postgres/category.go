package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type categoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *domain.Category) error {
	c.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx,
		`INSERT INTO categories (title, slug, image, created_on) VALUES ($1, $2, $3, $4) RETURNING id`,
		c.Title, c.Slug, c.Image, c.CreatedOn).Scan(&c.ID)
}

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, title, slug, image, created_on FROM categories ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Title, &c.Slug, &c.Image, &c.CreatedOn); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) GetBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	c := &domain.Category{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, title, slug, image, created_on FROM categories WHERE slug = $1`, slug).
		Scan(&c.ID, &c.Title, &c.Slug, &c.Image, &c.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("category", slug)
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}
