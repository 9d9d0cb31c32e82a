package postgres

import (
	"context"
	"database/sql"
	"time"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type reviewRepository struct {
	db *sql.DB
}

func NewReviewRepository(db *sql.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	rv.CreatedOn = time.Now()
	return r.db.QueryRowContext(ctx,
		`INSERT INTO reviews (item_id, user_id, rating, comment, created_on)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		rv.ItemID, rv.UserID, rv.Rating, rv.Comment, rv.CreatedOn).Scan(&rv.ID)
}

func (r *reviewRepository) ListByItem(ctx context.Context, itemID int32) ([]domain.Review, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.id, r.item_id, r.user_id, u.name, r.rating, r.comment, r.created_on
		 FROM reviews r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.item_id = $1
		 ORDER BY r.created_on DESC`, itemID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rv domain.Review
		if err := rows.Scan(&rv.ID, &rv.ItemID, &rv.UserID, &rv.UserName, &rv.Rating, &rv.Comment, &rv.CreatedOn); err != nil {
			return nil, err
		}
		reviews = append(reviews, rv)
	}
	return reviews, rows.Err()
}
