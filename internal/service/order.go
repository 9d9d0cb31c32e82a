package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/logger"
	"rentkart-backend/internal/repository"
	"rentkart-backend/internal/utils"
)

type orderService struct {
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	itemRepo    repository.ItemRepository
	addressRepo repository.AddressRepository
	userRepo    repository.UserRepository
	paymentRepo repository.PaymentRepository
	noteSvc     NotificationService
	emailSvc    EmailService
	rates       utils.Rates
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	itemRepo repository.ItemRepository,
	addressRepo repository.AddressRepository,
	userRepo repository.UserRepository,
	paymentRepo repository.PaymentRepository,
	noteSvc NotificationService,
	emailSvc EmailService,
	rates utils.Rates,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		itemRepo:    itemRepo,
		addressRepo: addressRepo,
		userRepo:    userRepo,
		paymentRepo: paymentRepo,
		noteSvc:     noteSvc,
		emailSvc:    emailSvc,
		rates:       rates,
	}
}

// Checkout turns the renter's cart into an order. Items are re-read so
// prices and owner ids come from current rows, availability is
// re-checked for every window, totals are computed server side, and the
// order insert plus cart clear commit in one transaction.
func (s *orderService) Checkout(ctx context.Context, userID int32, in CheckoutInput) (*domain.Order, error) {
	var v domain.Validator
	v.Check(in.AddressID > 0, "address_id", "is required")
	v.Check(in.PaymentMethod.Valid(), "payment_method", "must be one of COD, CARD, UPI")
	if in.DeliveryType == "" {
		in.DeliveryType = domain.DeliveryTypeStandard
	}
	v.Check(in.DeliveryType == domain.DeliveryTypeStandard || in.DeliveryType == domain.DeliveryTypeExpress,
		"delivery_type", "must be standard or express")
	if err := v.Err(); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Entries) == 0 {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "cart", Message: "is empty"},
		}}
	}

	addr, err := s.addressRepo.GetByID(ctx, in.AddressID, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]int32, 0, len(cart.Entries))
	for _, e := range cart.Entries {
		ids = append(ids, e.ItemID)
	}
	items, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.OrderLine, 0, len(cart.Entries))
	lineTotals := make([]int32, 0, len(cart.Entries))
	for _, e := range cart.Entries {
		item, ok := items[e.ItemID]
		if !ok {
			return nil, domain.NewNotFound("item", fmt.Sprintf("%d", e.ItemID))
		}

		taken, err := s.orderRepo.HasOverlapping(ctx, e.ItemID, e.StartDate, e.EndDate)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, fmt.Errorf("item %d is not available for the requested dates: %w", e.ItemID, domain.ErrConflict)
		}

		total, err := utils.LineTotal(item.Pricing.ForType(e.RentalType), e.Quantity, e.RentalType, e.StartDate, e.EndDate)
		if err != nil {
			return nil, err
		}
		lines = append(lines, domain.OrderLine{
			ItemID:     e.ItemID,
			OwnerID:    item.OwnerID,
			Quantity:   e.Quantity,
			RentalType: e.RentalType,
			StartDate:  e.StartDate,
			EndDate:    e.EndDate,
			LineTotal:  total,
		})
		lineTotals = append(lineTotals, total)
	}

	totals := utils.ComputeOrderTotals(lineTotals, in.DeliveryType, s.rates)

	order := &domain.Order{
		Reference:       "RK-" + strings.ToUpper(uuid.NewString()[:8]),
		RenterID:        userID,
		Lines:           lines,
		ShippingAddress: addr.Snapshot(),
		Subtotal:        totals.Subtotal,
		Tax:             totals.Tax,
		DeliveryFee:     totals.DeliveryFee,
		SecurityDeposit: totals.SecurityDeposit,
		TotalAmount:     totals.Total,
		DeliveryType:    in.DeliveryType,
		PaymentMethod:   in.PaymentMethod,
		Status:          domain.OrderStatusPending,
	}

	if err := s.orderRepo.CreateAndClearCart(ctx, order); err != nil {
		return nil, err
	}

	payment := &domain.Payment{
		OrderID: order.ID,
		Method:  order.PaymentMethod,
		Amount:  order.TotalAmount,
		Status:  domain.PaymentStatusPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		logger.Warn("failed to record payment", "order_id", order.ID, "error", err)
	}

	s.notifyCheckout(ctx, order)
	return order, nil
}

// notifyCheckout sends order notifications and the confirmation email.
// All of it is best effort; a failed notification never fails checkout.
func (s *orderService) notifyCheckout(ctx context.Context, order *domain.Order) {
	msg := fmt.Sprintf("Your order %s has been placed", order.Reference)
	if err := s.noteSvc.Notify(ctx, order.RenterID, msg); err != nil {
		logger.Warn("failed to notify renter", "order_id", order.ID, "error", err)
	}

	notified := map[int32]bool{}
	for _, ln := range order.Lines {
		if notified[ln.OwnerID] {
			continue
		}
		notified[ln.OwnerID] = true
		ownerMsg := fmt.Sprintf("Your item has been rented in order %s", order.Reference)
		if err := s.noteSvc.Notify(ctx, ln.OwnerID, ownerMsg); err != nil {
			logger.Warn("failed to notify owner", "order_id", order.ID, "owner_id", ln.OwnerID, "error", err)
		}
	}

	renter, err := s.userRepo.GetByID(ctx, order.RenterID)
	if err != nil {
		logger.Warn("failed to load renter for email", "order_id", order.ID, "error", err)
		return
	}
	if err := s.emailSvc.SendOrderConfirmation(ctx, renter.Email, order); err != nil {
		logger.Warn("failed to send order confirmation", "order_id", order.ID, "error", err)
	}
}

func (s *orderService) GetOrder(ctx context.Context, userID int32, isAdmin bool, orderID int32) (*domain.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.RenterID != userID && !s.ownsLine(order, userID) {
		return nil, domain.ErrForbidden
	}
	s.attachItems(ctx, order)
	return order, nil
}

func (s *orderService) ListMyOrders(ctx context.Context, userID int32) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByRenter(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		s.attachItems(ctx, &orders[i])
	}
	return orders, nil
}

func (s *orderService) ListOwnerOrders(ctx context.Context, ownerID int32) ([]domain.Order, error) {
	orders, err := s.orderRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		s.attachItems(ctx, &orders[i])
	}
	return orders, nil
}

// UpdateStatus applies a lifecycle transition. The renter may only
// cancel a pending order or report a delivered order returned; owners
// of a line and admins may apply any legal transition.
func (s *orderService) UpdateStatus(ctx context.Context, userID int32, isAdmin bool, orderID int32, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "status", Message: "is not a valid order status"},
		}}
	}

	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	switch {
	case isAdmin, s.ownsLine(order, userID):
	case order.RenterID == userID:
		renterAllowed := (status == domain.OrderStatusCancelled && order.Status == domain.OrderStatusPending) ||
			(status == domain.OrderStatusReturned && order.Status == domain.OrderStatusDelivered)
		if !renterAllowed {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}

	if !domain.CanTransition(order.Status, status) {
		return nil, fmt.Errorf("cannot change order from %s to %s: %w", order.Status, status, domain.ErrConflict)
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	order.Status = status

	msg := fmt.Sprintf("Order %s is now %s", order.Reference, status)
	if err := s.noteSvc.Notify(ctx, order.RenterID, msg); err != nil {
		logger.Warn("failed to notify renter of status change", "order_id", order.ID, "error", err)
	}
	return order, nil
}

func (s *orderService) ownsLine(order *domain.Order, userID int32) bool {
	for _, ln := range order.Lines {
		if ln.OwnerID == userID {
			return true
		}
	}
	return false
}

// attachItems decorates order lines with current item rows for display.
// Missing items (deleted since the order) are left nil.
func (s *orderService) attachItems(ctx context.Context, order *domain.Order) {
	if len(order.Lines) == 0 {
		return
	}
	ids := make([]int32, 0, len(order.Lines))
	for _, ln := range order.Lines {
		ids = append(ids, ln.ItemID)
	}
	items, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		logger.Warn("failed to load items for order", "order_id", order.ID, "error", err)
		return
	}
	for i := range order.Lines {
		order.Lines[i].Item = items[order.Lines[i].ItemID]
	}
}
