package postgres

import (
	"context"
	"database/sql"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type wishlistRepository struct {
	db *sql.DB
}

func NewWishlistRepository(db *sql.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

// Add is idempotent: adding an item already on the wishlist is a no-op.
func (r *wishlistRepository) Add(ctx context.Context, userID, itemID int32) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO wishlist_items (user_id, item_id) VALUES ($1, $2) ON CONFLICT (user_id, item_id) DO NOTHING`,
		userID, itemID)
	return err
}

func (r *wishlistRepository) Remove(ctx context.Context, userID, itemID int32) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM wishlist_items WHERE user_id = $1 AND item_id = $2`, userID, itemID)
	return err
}

func (r *wishlistRepository) ListItems(ctx context.Context, userID int32) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
	          WHERE id IN (SELECT item_id FROM wishlist_items WHERE user_id = $1)
	          ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}
