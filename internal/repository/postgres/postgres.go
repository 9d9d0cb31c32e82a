package postgres

import (
	"database/sql"

	"rentkart-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ItemRepository
	repository.CartRepository
	repository.OrderRepository
	repository.AddressRepository
	repository.WishlistRepository
	repository.ReviewRepository
	repository.NotificationRepository
	repository.CategoryRepository
	repository.PaymentRepository
	repository.ReturnRequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		ItemRepository:          NewItemRepository(db),
		CartRepository:          NewCartRepository(db),
		OrderRepository:         NewOrderRepository(db),
		AddressRepository:       NewAddressRepository(db),
		WishlistRepository:      NewWishlistRepository(db),
		ReviewRepository:        NewReviewRepository(db),
		NotificationRepository:  NewNotificationRepository(db),
		CategoryRepository:      NewCategoryRepository(db),
		PaymentRepository:       NewPaymentRepository(db),
		ReturnRequestRepository: NewReturnRequestRepository(db),
	}
}
