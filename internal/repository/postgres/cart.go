package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type cartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// Get loads the user's cart, creating an empty aggregate row on first
// access so every cart has a version to swap against.
func (r *cartRepository) Get(ctx context.Context, userID int32) (*domain.Cart, error) {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO carts (user_id, version) VALUES ($1, 0) ON CONFLICT (user_id) DO NOTHING`, userID)
	if err != nil {
		return nil, err
	}

	cart := &domain.Cart{UserID: userID}
	err = r.db.QueryRowContext(ctx, `SELECT version FROM carts WHERE user_id = $1`, userID).Scan(&cart.Version)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, item_id, rental_type, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), quantity
		 FROM cart_items WHERE user_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var e domain.CartEntry
		if err := rows.Scan(&e.ID, &e.ItemID, &e.RentalType, &e.StartDate, &e.EndDate, &e.Quantity); err != nil {
			return nil, err
		}
		cart.Entries = append(cart.Entries, e)
	}
	return cart, rows.Err()
}

// Replace writes the cart's full entry list, guarded by the version the
// caller read. A stale version means another request won the race and
// the caller must re-read and retry.
func (r *cartRepository) Replace(ctx context.Context, cart *domain.Cart) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE carts SET version = version + 1 WHERE user_id = $1 AND version = $2`,
		cart.UserID, cart.Version)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrVersionConflict
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, cart.UserID); err != nil {
		return err
	}

	for i := range cart.Entries {
		e := &cart.Entries[i]
		err := tx.QueryRowContext(ctx,
			`INSERT INTO cart_items (user_id, item_id, rental_type, start_date, end_date, quantity)
			 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`,
			cart.UserID, e.ItemID, e.RentalType, e.StartDate, e.EndDate, e.Quantity).Scan(&e.ID)
		if err != nil {
			return fmt.Errorf("insert cart entry for item %d: %w", e.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	cart.Version++
	return nil
}

// Clear empties the cart unconditionally.
func (r *cartRepository) Clear(ctx context.Context, userID int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, userID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE carts SET version = version + 1 WHERE user_id = $1`, userID); err != nil {
		return err
	}
	return tx.Commit()
}

// PruneMissingItems removes cart entries whose item no longer exists.
func (r *cartRepository) PruneMissingItems(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE NOT EXISTS (SELECT 1 FROM items WHERE items.id = cart_items.item_id)`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
