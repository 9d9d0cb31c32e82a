package repository

import (
	"context"

	"rentkart-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
}

type ItemRepository interface {
	Create(ctx context.Context, item *domain.Item) error
	GetByID(ctx context.Context, id int32) (*domain.Item, error)
	GetByIDs(ctx context.Context, ids []int32) (map[int32]*domain.Item, error)
	Update(ctx context.Context, item *domain.Item) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context, location string) ([]domain.Item, error)
	ListFeatured(ctx context.Context, location string, limit int32) ([]domain.Item, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Item, error)
}

// CartRepository persists the per-user cart aggregate. Replace is a
// compare-and-swap: it writes the full entry list only when the stored
// version matches the one the cart was read at, and bumps it.
type CartRepository interface {
	Get(ctx context.Context, userID int32) (*domain.Cart, error)
	Replace(ctx context.Context, cart *domain.Cart) error
	Clear(ctx context.Context, userID int32) error
	PruneMissingItems(ctx context.Context) (int64, error)
}

type OrderRepository interface {
	// CreateAndClearCart persists the order with its lines and empties
	// the renter's cart in a single database transaction.
	CreateAndClearCart(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id int32) (*domain.Order, error)
	ListByRenter(ctx context.Context, renterID int32) ([]domain.Order, error)
	ListByOwner(ctx context.Context, ownerID int32) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id int32, status domain.OrderStatus) error
	HasOverlapping(ctx context.Context, itemID int32, startDate, endDate string) (bool, error)
	ListEndingOn(ctx context.Context, date string) ([]domain.Order, error)
}

type AddressRepository interface {
	Create(ctx context.Context, addr *domain.Address) error
	Update(ctx context.Context, addr *domain.Address) error
	Delete(ctx context.Context, id, userID int32) error
	GetByID(ctx context.Context, id, userID int32) (*domain.Address, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Address, error)
}

type WishlistRepository interface {
	Add(ctx context.Context, userID, itemID int32) error
	Remove(ctx context.Context, userID, itemID int32) error
	ListItems(ctx context.Context, userID int32) ([]domain.Item, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ListByItem(ctx context.Context, itemID int32) ([]domain.Review, error)
}

type NotificationRepository interface {
	Create(ctx context.Context, note *domain.Notification) error
	ListByUser(ctx context.Context, userID int32) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, id, userID int32) error
}

type CategoryRepository interface {
	Create(ctx context.Context, cat *domain.Category) error
	List(ctx context.Context) ([]domain.Category, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Category, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	// MarkCompleted flips the order's payment to completed and stamps
	// the payment date.
	MarkCompleted(ctx context.Context, orderID int32) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
}

type ReturnRequestRepository interface {
	Create(ctx context.Context, req *domain.ReturnRequest) error
	List(ctx context.Context) ([]domain.ReturnRequest, error)
}
