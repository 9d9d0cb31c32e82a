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

type orderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

const orderColumns = `id, reference, renter_id, ship_full_name, ship_email, ship_phone, ship_address, ship_city, ship_state, ship_pincode, ship_landmark, ship_address_type, subtotal, tax, delivery_fee, security_deposit, total_amount, delivery_type, payment_method, status, created_on, updated_on`

func scanOrder(row interface{ Scan(...any) error }) (*domain.Order, error) {
	o := &domain.Order{}
	a := &o.ShippingAddress
	err := row.Scan(&o.ID, &o.Reference, &o.RenterID,
		&a.FullName, &a.Email, &a.Phone, &a.Address, &a.City, &a.State, &a.Pincode, &a.Landmark, &a.AddressType,
		&o.Subtotal, &o.Tax, &o.DeliveryFee, &o.SecurityDeposit, &o.TotalAmount,
		&o.DeliveryType, &o.PaymentMethod, &o.Status, &o.CreatedOn, &o.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// CreateAndClearCart inserts the order with its lines and empties the
// renter's cart in a single transaction, so a failed cart clear rolls
// the order back rather than leaving the two out of step.
func (r *orderRepository) CreateAndClearCart(ctx context.Context, o *domain.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now()
	o.CreatedOn = now
	o.UpdatedOn = now
	a := o.ShippingAddress
	err = tx.QueryRowContext(ctx,
		`INSERT INTO orders (reference, renter_id, ship_full_name, ship_email, ship_phone, ship_address, ship_city, ship_state, ship_pincode, ship_landmark, ship_address_type, subtotal, tax, delivery_fee, security_deposit, total_amount, delivery_type, payment_method, status, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21) RETURNING id`,
		o.Reference, o.RenterID, a.FullName, a.Email, a.Phone, a.Address, a.City, a.State, a.Pincode, a.Landmark, a.AddressType,
		o.Subtotal, o.Tax, o.DeliveryFee, o.SecurityDeposit, o.TotalAmount,
		o.DeliveryType, o.PaymentMethod, o.Status, now, now).Scan(&o.ID)
	if err != nil {
		return err
	}

	for i := range o.Lines {
		ln := &o.Lines[i]
		ln.OrderID = o.ID
		err := tx.QueryRowContext(ctx,
			`INSERT INTO order_items (order_id, item_id, owner_id, quantity, rental_type, start_date, end_date, line_total)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`,
			o.ID, ln.ItemID, ln.OwnerID, ln.Quantity, ln.RentalType, ln.StartDate, ln.EndDate, ln.LineTotal).Scan(&ln.ID)
		if err != nil {
			return err
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = $1`, o.RenterID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `UPDATE carts SET version = version + 1 WHERE user_id = $1`, o.RenterID); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *orderRepository) GetByID(ctx context.Context, id int32) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFound("order", strconv.Itoa(int(id)))
	}
	if err != nil {
		return nil, err
	}
	if err := r.loadLines(ctx, []*domain.Order{o}); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *orderRepository) ListByRenter(ctx context.Context, renterID int32) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE renter_id = $1 ORDER BY created_on DESC`
	return r.queryOrders(ctx, query, renterID)
}

// ListByOwner returns orders containing at least one line owned by the
// given user, with each order's lines filtered to that owner.
func (r *orderRepository) ListByOwner(ctx context.Context, ownerID int32) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders
	          WHERE EXISTS (SELECT 1 FROM order_items WHERE order_items.order_id = orders.id AND order_items.owner_id = $1)
	          ORDER BY created_on DESC`
	orders, err := r.queryOrders(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		filtered := orders[i].Lines[:0]
		for _, ln := range orders[i].Lines {
			if ln.OwnerID == ownerID {
				filtered = append(filtered, ln)
			}
		}
		orders[i].Lines = filtered
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id int32, status domain.OrderStatus) error {
	res, err := r.db.ExecContext(ctx, `UPDATE orders SET status=$1, updated_on=$2 WHERE id=$3`, status, time.Now(), id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.NewNotFound("order", strconv.Itoa(int(id)))
	}
	return nil
}

// HasOverlapping reports whether any non-cancelled, non-returned order
// line reserves the item for a window overlapping [startDate, endDate].
// Bounds are inclusive on both sides.
func (r *orderRepository) HasOverlapping(ctx context.Context, itemID int32, startDate, endDate string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	            SELECT 1 FROM order_items oi
	            JOIN orders o ON o.id = oi.order_id
	            WHERE oi.item_id = $1
	              AND o.status NOT IN ('cancelled', 'returned')
	              AND oi.start_date <= $3::date
	              AND oi.end_date >= $2::date
	          )`
	err := r.db.QueryRowContext(ctx, query, itemID, startDate, endDate).Scan(&exists)
	return exists, err
}

// ListEndingOn returns active orders with a line whose rental window
// ends on the given date, for return reminders.
func (r *orderRepository) ListEndingOn(ctx context.Context, date string) ([]domain.Order, error) {
	query := `SELECT DISTINCT ` + orderColumns + ` FROM orders
	          JOIN order_items oi ON oi.order_id = orders.id
	          WHERE oi.end_date = $1::date AND orders.status NOT IN ('cancelled', 'returned')`
	return r.queryOrders(ctx, query, date)
}

func (r *orderRepository) queryOrders(ctx context.Context, query string, args ...interface{}) ([]domain.Order, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	var ptrs []*domain.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i := range orders {
		ptrs = append(ptrs, &orders[i])
	}
	if err := r.loadLines(ctx, ptrs); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) loadLines(ctx context.Context, orders []*domain.Order) error {
	byID := make(map[int32]*domain.Order, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
	}
	for id := range byID {
		rows, err := r.db.QueryContext(ctx,
			`SELECT id, order_id, item_id, owner_id, quantity, rental_type, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), line_total
			 FROM order_items WHERE order_id = $1 ORDER BY id`, id)
		if err != nil {
			return err
		}
		for rows.Next() {
			var ln domain.OrderLine
			if err := rows.Scan(&ln.ID, &ln.OrderID, &ln.ItemID, &ln.OwnerID, &ln.Quantity, &ln.RentalType, &ln.StartDate, &ln.EndDate, &ln.LineTotal); err != nil {
				rows.Close()
				return err
			}
			byID[id].Lines = append(byID[id].Lines, ln)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return err
		}
		rows.Close()
	}
	return nil
}
