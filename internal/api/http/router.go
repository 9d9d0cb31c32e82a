package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"rentkart-backend/internal/security"
	"rentkart-backend/internal/service"
	"rentkart-backend/internal/storage"
)

// Services bundles everything the HTTP surface depends on.
type Services struct {
	Auth         service.AuthService
	User         service.UserService
	Item         service.ItemService
	Cart         service.CartService
	Order        service.OrderService
	Address      service.AddressService
	Wishlist     service.WishlistService
	Review       service.ReviewService
	Notification service.NotificationService
	Category     service.CategoryService
	Payment      service.PaymentService
	Return       service.ReturnService
	Tokens       security.TokenManager
	Storage      storage.Storage
	MaxFileSize  int64
}

// NewRouter builds the REST surface. Public routes stay outside the
// auth middleware; everything else requires a bearer token.
func NewRouter(s Services) *mux.Router {
	auth := &authHandler{authSvc: s.Auth}
	user := &userHandler{userSvc: s.User}
	item := &itemHandler{itemSvc: s.Item}
	cart := &cartHandler{cartSvc: s.Cart}
	order := &orderHandler{orderSvc: s.Order}
	address := &addressHandler{addressSvc: s.Address}
	wishlist := &wishlistHandler{wishlistSvc: s.Wishlist}
	review := &reviewHandler{reviewSvc: s.Review}
	note := &notificationHandler{noteSvc: s.Notification}
	category := &categoryHandler{categorySvc: s.Category}
	payment := &paymentHandler{paymentSvc: s.Payment}
	returns := &returnHandler{returnSvc: s.Return}
	upload := &uploadHandler{store: s.Storage, maxFileSize: s.MaxFileSize}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	// Public
	api.HandleFunc("/auth/signup", auth.signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", auth.login).Methods(http.MethodPost)
	api.HandleFunc("/items", item.list).Methods(http.MethodGet)
	api.HandleFunc("/items/featured", item.listFeatured).Methods(http.MethodGet)
	api.HandleFunc("/categories", category.list).Methods(http.MethodGet)
	api.HandleFunc("/uploads/{key}", upload.download).Methods(http.MethodGet)

	// Authenticated
	authed := api.NewRoute().Subrouter()
	authed.Use(authMiddleware(s.Tokens))

	authed.HandleFunc("/users/me", user.getProfile).Methods(http.MethodGet)
	authed.HandleFunc("/users/me", user.updateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/users/change-password", user.changePassword).Methods(http.MethodPost)

	authed.HandleFunc("/items", item.create).Methods(http.MethodPost)
	authed.HandleFunc("/items/mine", item.listMine).Methods(http.MethodGet)
	authed.HandleFunc("/items/check-availability", item.checkAvailability).Methods(http.MethodPost)
	authed.HandleFunc("/items/{id:[0-9]+}", item.update).Methods(http.MethodPut)
	authed.HandleFunc("/items/{id:[0-9]+}", item.delete).Methods(http.MethodDelete)

	authed.HandleFunc("/cart", cart.get).Methods(http.MethodGet)
	authed.HandleFunc("/cart", cart.add).Methods(http.MethodPost)
	authed.HandleFunc("/cart", cart.clear).Methods(http.MethodDelete)
	authed.HandleFunc("/cart/{entryId:[0-9]+}", cart.updateQuantity).Methods(http.MethodPatch)
	authed.HandleFunc("/cart/{entryId:[0-9]+}", cart.remove).Methods(http.MethodDelete)

	authed.HandleFunc("/orders/checkout", order.checkout).Methods(http.MethodPost)
	authed.HandleFunc("/orders", order.listMine).Methods(http.MethodGet)
	authed.HandleFunc("/orders/owner", order.listOwner).Methods(http.MethodGet)
	authed.HandleFunc("/orders/{id:[0-9]+}", order.get).Methods(http.MethodGet)
	authed.HandleFunc("/orders/{id:[0-9]+}/status", order.updateStatus).Methods(http.MethodPatch)
	authed.HandleFunc("/orders/{id:[0-9]+}/deliver", order.markDelivered).Methods(http.MethodPatch)
	authed.HandleFunc("/orders/{id:[0-9]+}/return", order.markReturned).Methods(http.MethodPatch)

	authed.HandleFunc("/addresses", address.list).Methods(http.MethodGet)
	authed.HandleFunc("/addresses", address.create).Methods(http.MethodPost)
	authed.HandleFunc("/addresses/{id:[0-9]+}", address.update).Methods(http.MethodPut)
	authed.HandleFunc("/addresses/{id:[0-9]+}", address.delete).Methods(http.MethodDelete)

	authed.HandleFunc("/wishlist", wishlist.get).Methods(http.MethodGet)
	authed.HandleFunc("/wishlist", wishlist.add).Methods(http.MethodPost)
	authed.HandleFunc("/wishlist/{itemId:[0-9]+}", wishlist.remove).Methods(http.MethodDelete)

	authed.HandleFunc("/reviews", review.create).Methods(http.MethodPost)

	authed.HandleFunc("/notifications", note.list).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id:[0-9]+}/read", note.markAsRead).Methods(http.MethodPatch)

	authed.HandleFunc("/returns", returns.create).Methods(http.MethodPost)
	authed.HandleFunc("/returns", requireAdmin(returns.list)).Methods(http.MethodGet)
	authed.HandleFunc("/payments", payment.record).Methods(http.MethodPost)
	authed.HandleFunc("/payments", requireAdmin(payment.list)).Methods(http.MethodGet)
	authed.HandleFunc("/categories", requireAdmin(category.create)).Methods(http.MethodPost)
	authed.HandleFunc("/uploads", upload.upload).Methods(http.MethodPost)

	// Item detail and reviews are public, registered after the more
	// specific authenticated item routes.
	api.HandleFunc("/items/{id:[0-9]+}", item.get).Methods(http.MethodGet)
	api.HandleFunc("/items/{id:[0-9]+}/reviews", review.listByItem).Methods(http.MethodGet)

	return r
}
