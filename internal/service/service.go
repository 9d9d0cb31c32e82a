package service

import (
	"context"

	"rentkart-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, phone, password string) (*domain.User, string, error) // user, access token
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, name, phone, address string) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) error
}

type ItemService interface {
	CreateItem(ctx context.Context, item *domain.Item) error
	GetItem(ctx context.Context, id int32) (*domain.Item, error)
	UpdateItem(ctx context.Context, userID int32, item *domain.Item) error
	DeleteItem(ctx context.Context, userID, itemID int32) error
	ListItems(ctx context.Context, location string) ([]domain.Item, error)
	ListFeatured(ctx context.Context, location string) ([]domain.Item, error)
	ListMyItems(ctx context.Context, ownerID int32) ([]domain.Item, error)
	// CheckAvailability reports whether the item is free for the whole
	// window. Bounds are inclusive on both sides.
	CheckAvailability(ctx context.Context, itemID int32, startDate, endDate string) (bool, error)
}

type CartService interface {
	GetCart(ctx context.Context, userID int32) ([]domain.CartLine, error)
	AddToCart(ctx context.Context, userID int32, itemID int32, rentalType domain.RentalType, startDate, endDate string, quantity int32) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, userID, entryID, quantity int32) ([]domain.CartLine, error)
	RemoveFromCart(ctx context.Context, userID, entryID int32) ([]domain.CartLine, error)
	ClearCart(ctx context.Context, userID int32) error
}

// CheckoutInput carries everything the renter submits at checkout.
// Totals are recomputed server side; client-sent amounts are ignored.
type CheckoutInput struct {
	AddressID     int32
	DeliveryType  domain.DeliveryType
	PaymentMethod domain.PaymentMethod
}

type OrderService interface {
	Checkout(ctx context.Context, userID int32, in CheckoutInput) (*domain.Order, error)
	GetOrder(ctx context.Context, userID int32, isAdmin bool, orderID int32) (*domain.Order, error)
	ListMyOrders(ctx context.Context, userID int32) ([]domain.Order, error)
	ListOwnerOrders(ctx context.Context, ownerID int32) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, userID int32, isAdmin bool, orderID int32, status domain.OrderStatus) (*domain.Order, error)
}

type AddressService interface {
	AddAddress(ctx context.Context, addr *domain.Address) error
	UpdateAddress(ctx context.Context, addr *domain.Address) error
	DeleteAddress(ctx context.Context, userID, addressID int32) error
	ListAddresses(ctx context.Context, userID int32) ([]domain.Address, error)
}

type WishlistService interface {
	AddItem(ctx context.Context, userID, itemID int32) error
	RemoveItem(ctx context.Context, userID, itemID int32) error
	GetWishlist(ctx context.Context, userID int32) (*domain.Wishlist, error)
}

type ReviewService interface {
	AddReview(ctx context.Context, review *domain.Review) error
	ListReviews(ctx context.Context, itemID int32) ([]domain.Review, error)
}

type NotificationService interface {
	Notify(ctx context.Context, userID int32, message string) error
	ListNotifications(ctx context.Context, userID int32) ([]domain.Notification, error)
	MarkAsRead(ctx context.Context, userID, noteID int32) error
}

type CategoryService interface {
	CreateCategory(ctx context.Context, title, image string) (*domain.Category, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, slug string) (*domain.Category, error)
}

type PaymentService interface {
	RecordPayment(ctx context.Context, userID, orderID int32) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
}

type ReturnService interface {
	RequestReturn(ctx context.Context, userID, orderID int32, reason string) (*domain.ReturnRequest, error)
	ListReturnRequests(ctx context.Context) ([]domain.ReturnRequest, error)
}

type EmailService interface {
	SendWelcomeEmail(ctx context.Context, to, name string) error
	SendOrderConfirmation(ctx context.Context, to string, order *domain.Order) error
	SendReturnReminder(ctx context.Context, to string, order *domain.Order) error
}
