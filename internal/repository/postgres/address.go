package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/repository"
)

type addressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

const addressColumns = `id, user_id, full_name, email, phone, address, city, state, pincode, landmark, address_type, is_default, created_on, updated_on`

func scanAddress(row interface{ Scan(...any) error }) (*domain.Address, error) {
	a := &domain.Address{}
	err := row.Scan(&a.ID, &a.UserID, &a.FullName, &a.Email, &a.Phone, &a.Address, &a.City, &a.State,
		&a.Pincode, &a.Landmark, &a.AddressType, &a.IsDefault, &a.CreatedOn, &a.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Create inserts an address. When the address is marked default, every
// other address of the user loses the flag in the same transaction so
// at most one default exists.
func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if a.IsDefault {
		if _, err := tx.ExecContext(ctx, `UPDATE addresses SET is_default = false WHERE user_id = $1`, a.UserID); err != nil {
			return err
		}
	}

	now := time.Now()
	a.CreatedOn = now
	a.UpdatedOn = now
	err = tx.QueryRowContext(ctx,
		`INSERT INTO addresses (user_id, full_name, email, phone, address, city, state, pincode, landmark, address_type, is_default, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id`,
		a.UserID, a.FullName, a.Email, a.Phone, a.Address, a.City, a.State, a.Pincode, a.Landmark, a.AddressType, a.IsDefault, now, now).Scan(&a.ID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *addressRepository) Update(ctx context.Context, a *domain.Address) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if a.IsDefault {
		if _, err := tx.ExecContext(ctx, `UPDATE addresses SET is_default = false WHERE user_id = $1 AND id <> $2`, a.UserID, a.ID); err != nil {
			return err
		}
	}

	a.UpdatedOn = time.Now()
	res, err := tx.ExecContext(ctx,
		`UPDATE addresses SET full_name=$1, email=$2, phone=$3, address=$4, city=$5, state=$6, pincode=$7, landmark=$8, address_type=$9, is_default=$10, updated_on=$11
		 WHERE id = $12 AND user_id = $13`,
		a.FullName, a.Email, a.Phone, a.Address, a.City, a.State, a.Pincode, a.Landmark, a.AddressType, a.IsDefault, a.UpdatedOn, a.ID, a.UserID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFound("address", strconv.Itoa(int(a.ID)))
	}
	return tx.Commit()
}

func (r *addressRepository) Delete(ctx context.Context, id, userID int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFound("address", strconv.Itoa(int(id)))
	}
	return nil
}

func (r *addressRepository) GetByID(ctx context.Context, id, userID int32) (*domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE id = $1 AND user_id = $2`
	a, err := scanAddress(r.db.QueryRowContext(ctx, query, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("address", strconv.Itoa(int(id)))
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Address, error) {
	query := `SELECT ` + addressColumns + ` FROM addresses WHERE user_id = $1 ORDER BY is_default DESC, created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addresses []domain.Address
	for rows.Next() {
		a, err := scanAddress(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, *a)
	}
	return addresses, rows.Err()
}
