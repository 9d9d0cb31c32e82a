package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
	"rentkart-backend/internal/utils"
)

type orderFixture struct {
	orderRepo   *MockOrderRepo
	cartRepo    *MockCartRepo
	itemRepo    *MockItemRepo
	addressRepo *MockAddressRepo
	userRepo    *MockUserRepo
	paymentRepo *MockPaymentRepo
	noteSvc     *MockNotificationService
	emailSvc    *MockEmailService
	svc         service.OrderService
}

func newOrderFixture() *orderFixture {
	f := &orderFixture{
		orderRepo:   new(MockOrderRepo),
		cartRepo:    new(MockCartRepo),
		itemRepo:    new(MockItemRepo),
		addressRepo: new(MockAddressRepo),
		userRepo:    new(MockUserRepo),
		paymentRepo: new(MockPaymentRepo),
		noteSvc:     new(MockNotificationService),
		emailSvc:    new(MockEmailService),
	}
	f.svc = service.NewOrderService(
		f.orderRepo, f.cartRepo, f.itemRepo, f.addressRepo, f.userRepo,
		f.paymentRepo, f.noteSvc, f.emailSvc, utils.Rates{},
	)
	return f
}

func testAddress(id, userID int32) *domain.Address {
	return &domain.Address{
		ID: id, UserID: userID,
		FullName: "Asha Rao", Email: "asha@example.com", Phone: "9999999999",
		Address: "12 MG Road", City: "Bengaluru", State: "Karnataka", Pincode: "560001",
	}
}

func TestOrderService_Checkout(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the order from re-read items and clears the cart", func(t *testing.T) {
		f := newOrderFixture()

		entry := domain.CartEntry{ID: 1, ItemID: 10, RentalType: domain.RentalTypePerDay,
			StartDate: "2026-09-01", EndDate: "2026-09-06", Quantity: 1}
		f.cartRepo.On("Get", ctx, int32(7)).Return(cartWith(3, entry), nil).Once()
		f.addressRepo.On("GetByID", ctx, int32(2), int32(7)).Return(testAddress(2, 7), nil).Once()
		f.itemRepo.On("GetByIDs", ctx, []int32{10}).
			Return(map[int32]*domain.Item{10: {ID: 10, OwnerID: 42, Pricing: domain.Pricing{PerDay: 300}}}, nil).Once()
		f.orderRepo.On("HasOverlapping", ctx, int32(10), "2026-09-01", "2026-09-06").Return(false, nil).Once()
		f.orderRepo.On("CreateAndClearCart", ctx, mock.MatchedBy(func(o *domain.Order) bool {
			return o.RenterID == 7 &&
				o.Status == domain.OrderStatusPending &&
				len(o.Lines) == 1 &&
				o.Lines[0].OwnerID == 42 && // stamped from the item row, not the client
				o.Lines[0].LineTotal == 1500 && // 300 * 1 * 5 days
				o.Subtotal == 1500 &&
				o.Tax == 270 && // 18% of 1500
				o.DeliveryFee == 99 &&
				o.SecurityDeposit == 300 && // 20% of 1500
				o.TotalAmount == 2169 &&
				o.Reference != ""
		})).Return(nil).Once()
		f.paymentRepo.On("Create", ctx, mock.MatchedBy(func(p *domain.Payment) bool {
			return p.Status == domain.PaymentStatusPending && p.Method == domain.PaymentMethodCOD
		})).Return(nil).Once()
		f.noteSvc.On("Notify", ctx, int32(7), mock.Anything).Return(nil).Once()
		f.noteSvc.On("Notify", ctx, int32(42), mock.Anything).Return(nil).Once()
		f.userRepo.On("GetByID", ctx, int32(7)).Return(&domain.User{ID: 7, Email: "asha@example.com"}, nil).Once()
		f.emailSvc.On("SendOrderConfirmation", ctx, "asha@example.com", mock.Anything).Return(nil).Once()

		order, err := f.svc.Checkout(ctx, 7, service.CheckoutInput{
			AddressID:     2,
			PaymentMethod: domain.PaymentMethodCOD,
		})
		assert.NoError(t, err)
		assert.Equal(t, domain.DeliveryTypeStandard, order.DeliveryType)
		assert.Equal(t, "Asha Rao", order.ShippingAddress.FullName)
		f.orderRepo.AssertExpectations(t)
	})

	t.Run("empty cart is rejected", func(t *testing.T) {
		f := newOrderFixture()
		f.cartRepo.On("Get", ctx, int32(7)).Return(cartWith(0), nil).Once()

		_, err := f.svc.Checkout(ctx, 7, service.CheckoutInput{
			AddressID:     2,
			PaymentMethod: domain.PaymentMethodCOD,
		})
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
		f.orderRepo.AssertNotCalled(t, "CreateAndClearCart", mock.Anything, mock.Anything)
	})

	t.Run("item deleted since it was carted is a not found error", func(t *testing.T) {
		f := newOrderFixture()

		entry := domain.CartEntry{ID: 1, ItemID: 10, RentalType: domain.RentalTypePerDay,
			StartDate: "2026-09-01", EndDate: "2026-09-02", Quantity: 1}
		f.cartRepo.On("Get", ctx, int32(7)).Return(cartWith(3, entry), nil).Once()
		f.addressRepo.On("GetByID", ctx, int32(2), int32(7)).Return(testAddress(2, 7), nil).Once()
		f.itemRepo.On("GetByIDs", ctx, []int32{10}).Return(map[int32]*domain.Item{}, nil).Once()

		_, err := f.svc.Checkout(ctx, 7, service.CheckoutInput{
			AddressID:     2,
			PaymentMethod: domain.PaymentMethodCOD,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
		f.orderRepo.AssertNotCalled(t, "CreateAndClearCart", mock.Anything, mock.Anything)
	})

	t.Run("overlapping booking at checkout is a conflict", func(t *testing.T) {
		f := newOrderFixture()

		entry := domain.CartEntry{ID: 1, ItemID: 10, RentalType: domain.RentalTypePerDay,
			StartDate: "2026-09-01", EndDate: "2026-09-06", Quantity: 1}
		f.cartRepo.On("Get", ctx, int32(7)).Return(cartWith(3, entry), nil).Once()
		f.addressRepo.On("GetByID", ctx, int32(2), int32(7)).Return(testAddress(2, 7), nil).Once()
		f.itemRepo.On("GetByIDs", ctx, []int32{10}).
			Return(map[int32]*domain.Item{10: {ID: 10, OwnerID: 42, Pricing: domain.Pricing{PerDay: 300}}}, nil).Once()
		f.orderRepo.On("HasOverlapping", ctx, int32(10), "2026-09-01", "2026-09-06").Return(true, nil).Once()

		_, err := f.svc.Checkout(ctx, 7, service.CheckoutInput{
			AddressID:     2,
			PaymentMethod: domain.PaymentMethodCOD,
		})
		assert.ErrorIs(t, err, domain.ErrConflict)
		f.orderRepo.AssertNotCalled(t, "CreateAndClearCart", mock.Anything, mock.Anything)
	})

	t.Run("address of another user is a not found error", func(t *testing.T) {
		f := newOrderFixture()

		entry := domain.CartEntry{ID: 1, ItemID: 10, RentalType: domain.RentalTypePerDay,
			StartDate: "2026-09-01", EndDate: "2026-09-02", Quantity: 1}
		f.cartRepo.On("Get", ctx, int32(7)).Return(cartWith(3, entry), nil).Once()
		f.addressRepo.On("GetByID", ctx, int32(9), int32(7)).Return(nil, domain.NewNotFound("address", "9")).Once()

		_, err := f.svc.Checkout(ctx, 7, service.CheckoutInput{
			AddressID:     9,
			PaymentMethod: domain.PaymentMethodCOD,
		})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("invalid payment method is rejected", func(t *testing.T) {
		f := newOrderFixture()

		_, err := f.svc.Checkout(ctx, 7, service.CheckoutInput{
			AddressID:     2,
			PaymentMethod: "BARTER",
		})
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	pendingOrder := func() *domain.Order {
		return &domain.Order{
			ID: 1, Reference: "RK-TEST", RenterID: 7,
			Status: domain.OrderStatusPending,
			Lines:  []domain.OrderLine{{ItemID: 10, OwnerID: 42}},
		}
	}

	t.Run("owner confirms a pending order", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetByID", ctx, int32(1)).Return(pendingOrder(), nil).Once()
		f.orderRepo.On("UpdateStatus", ctx, int32(1), domain.OrderStatusConfirmed).Return(nil).Once()
		f.noteSvc.On("Notify", ctx, int32(7), mock.Anything).Return(nil).Once()

		order, err := f.svc.UpdateStatus(ctx, 42, false, 1, domain.OrderStatusConfirmed)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusConfirmed, order.Status)
	})

	t.Run("renter cancels a pending order", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetByID", ctx, int32(1)).Return(pendingOrder(), nil).Once()
		f.orderRepo.On("UpdateStatus", ctx, int32(1), domain.OrderStatusCancelled).Return(nil).Once()
		f.noteSvc.On("Notify", ctx, int32(7), mock.Anything).Return(nil).Once()

		order, err := f.svc.UpdateStatus(ctx, 7, false, 1, domain.OrderStatusCancelled)
		assert.NoError(t, err)
		assert.Equal(t, domain.OrderStatusCancelled, order.Status)
	})

	t.Run("renter cannot confirm their own order", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetByID", ctx, int32(1)).Return(pendingOrder(), nil).Once()

		_, err := f.svc.UpdateStatus(ctx, 7, false, 1, domain.OrderStatusConfirmed)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		f.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stranger cannot touch the order", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetByID", ctx, int32(1)).Return(pendingOrder(), nil).Once()

		_, err := f.svc.UpdateStatus(ctx, 1234, false, 1, domain.OrderStatusCancelled)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("illegal transition is a conflict", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetByID", ctx, int32(1)).Return(pendingOrder(), nil).Once()

		_, err := f.svc.UpdateStatus(ctx, 42, false, 1, domain.OrderStatusDelivered)
		assert.ErrorIs(t, err, domain.ErrConflict)
		f.orderRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("terminal states reject any transition", func(t *testing.T) {
		f := newOrderFixture()
		cancelled := pendingOrder()
		cancelled.Status = domain.OrderStatusCancelled
		f.orderRepo.On("GetByID", ctx, int32(1)).Return(cancelled, nil).Once()

		_, err := f.svc.UpdateStatus(ctx, 42, false, 1, domain.OrderStatusConfirmed)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("unknown status is rejected before any lookup", func(t *testing.T) {
		f := newOrderFixture()

		_, err := f.svc.UpdateStatus(ctx, 42, false, 1, "teleported")
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
		f.orderRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})
}

func TestOrderService_GetOrder(t *testing.T) {
	ctx := context.Background()

	order := func() *domain.Order {
		return &domain.Order{ID: 1, RenterID: 7, Lines: []domain.OrderLine{{ItemID: 10, OwnerID: 42}}}
	}

	t.Run("renter sees their order with item details", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetByID", ctx, int32(1)).Return(order(), nil).Once()
		f.itemRepo.On("GetByIDs", ctx, []int32{10}).
			Return(map[int32]*domain.Item{10: {ID: 10, Title: "Cordless Drill"}}, nil).Once()

		got, err := f.svc.GetOrder(ctx, 7, false, 1)
		assert.NoError(t, err)
		assert.NotNil(t, got.Lines[0].Item)
		assert.Equal(t, "Cordless Drill", got.Lines[0].Item.Title)
	})

	t.Run("line owner sees the order", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetByID", ctx, int32(1)).Return(order(), nil).Once()
		f.itemRepo.On("GetByIDs", ctx, []int32{10}).Return(map[int32]*domain.Item{}, nil).Once()

		_, err := f.svc.GetOrder(ctx, 42, false, 1)
		assert.NoError(t, err)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		f := newOrderFixture()
		f.orderRepo.On("GetByID", ctx, int32(1)).Return(order(), nil).Once()

		_, err := f.svc.GetOrder(ctx, 1234, false, 1)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})
}
