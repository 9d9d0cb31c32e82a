package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"

	"github.com/lib/pq"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, owner_id, category_id, title, description, price_per_day, price_per_week, price_per_month, condition, status, images, quantity, deposit, location, is_featured, created_on, updated_on`

func scanItem(row interface{ Scan(...any) error }) (*domain.Item, error) {
	it := &domain.Item{}
	err := row.Scan(&it.ID, &it.OwnerID, &it.CategoryID, &it.Title, &it.Description,
		&it.Pricing.PerDay, &it.Pricing.PerWeek, &it.Pricing.PerMonth,
		&it.Condition, &it.Status, pq.Array(&it.Images), &it.Quantity,
		&it.Deposit, &it.Location, &it.IsFeatured, &it.CreatedOn, &it.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (owner_id, category_id, title, description, price_per_day, price_per_week, price_per_month, condition, status, images, quantity, deposit, location, is_featured, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16) RETURNING id`
	now := time.Now()
	it.CreatedOn = now
	it.UpdatedOn = now
	if it.Status == "" {
		it.Status = domain.ItemStatusAvailable
	}
	if it.Condition == "" {
		it.Condition = domain.ItemConditionGood
	}
	if it.Quantity == 0 {
		it.Quantity = 1
	}
	return r.db.QueryRowContext(ctx, query, it.OwnerID, it.CategoryID, it.Title, it.Description,
		it.Pricing.PerDay, it.Pricing.PerWeek, it.Pricing.PerMonth, it.Condition, it.Status,
		pq.Array(it.Images), it.Quantity, it.Deposit, it.Location, it.IsFeatured, now, now).Scan(&it.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int32) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("item", strconv.Itoa(int(id)))
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) GetByIDs(ctx context.Context, ids []int32) (map[int32]*domain.Item, error) {
	items := make(map[int32]*domain.Item, len(ids))
	if len(ids) == 0 {
		return items, nil
	}
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items[it.ID] = it
	}
	return items, rows.Err()
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET category_id=$1, title=$2, description=$3, price_per_day=$4, price_per_week=$5, price_per_month=$6, condition=$7, status=$8, images=$9, quantity=$10, deposit=$11, location=$12, is_featured=$13, updated_on=$14 WHERE id=$15`
	_, err := r.db.ExecContext(ctx, query, it.CategoryID, it.Title, it.Description,
		it.Pricing.PerDay, it.Pricing.PerWeek, it.Pricing.PerMonth, it.Condition, it.Status,
		pq.Array(it.Images), it.Quantity, it.Deposit, it.Location, it.IsFeatured, time.Now(), it.ID)
	return err
}

func (r *itemRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	return err
}

func (r *itemRepository) List(ctx context.Context, location string) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items`
	args := []interface{}{}
	if location != "" {
		query += ` WHERE location ILIKE '%' || $1 || '%'`
		args = append(args, location)
	}
	query += ` ORDER BY created_on DESC`
	return r.queryItems(ctx, query, args...)
}

func (r *itemRepository) ListFeatured(ctx context.Context, location string, limit int32) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE status = $1`
	args := []interface{}{domain.ItemStatusAvailable}
	if location != "" {
		query += ` AND location ILIKE '%' || $2 || '%'`
		args = append(args, location)
	}
	query += ` ORDER BY created_on DESC LIMIT ` + strconv.Itoa(int(limit))
	return r.queryItems(ctx, query, args...)
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY created_on DESC`
	return r.queryItems(ctx, query, ownerID)
}

func (r *itemRepository) queryItems(ctx context.Context, query string, args ...interface{}) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
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
