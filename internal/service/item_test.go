package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
)

func TestItemService_CheckAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("free window is available", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		orderRepo := new(MockOrderRepo)
		svc := service.NewItemService(itemRepo, orderRepo)

		itemRepo.On("GetByID", ctx, int32(10)).Return(drillItem(10, 3), nil).Once()
		orderRepo.On("HasOverlapping", ctx, int32(10), "2026-09-01", "2026-09-05").Return(false, nil).Once()

		available, err := svc.CheckAvailability(ctx, 10, "2026-09-01", "2026-09-05")
		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("overlapping booking makes it unavailable, not an error", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		orderRepo := new(MockOrderRepo)
		svc := service.NewItemService(itemRepo, orderRepo)

		itemRepo.On("GetByID", ctx, int32(10)).Return(drillItem(10, 3), nil).Once()
		orderRepo.On("HasOverlapping", ctx, int32(10), "2026-09-03", "2026-09-04").Return(true, nil).Once()

		available, err := svc.CheckAvailability(ctx, 10, "2026-09-03", "2026-09-04")
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("missing item id is a validation error", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		orderRepo := new(MockOrderRepo)
		svc := service.NewItemService(itemRepo, orderRepo)

		_, err := svc.CheckAvailability(ctx, 0, "2026-09-01", "2026-09-05")
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
		assert.Equal(t, "item_id", ve.Fields[0].Field)
		itemRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("missing dates are a validation error", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		orderRepo := new(MockOrderRepo)
		svc := service.NewItemService(itemRepo, orderRepo)

		_, err := svc.CheckAvailability(ctx, 10, "", "2026-09-05")
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
		orderRepo.AssertNotCalled(t, "HasOverlapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("malformed dates are a validation error", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		orderRepo := new(MockOrderRepo)
		svc := service.NewItemService(itemRepo, orderRepo)

		_, err := svc.CheckAvailability(ctx, 10, "01/09/2026", "2026-09-05")
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
	})

	t.Run("unknown item is a not found error", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		orderRepo := new(MockOrderRepo)
		svc := service.NewItemService(itemRepo, orderRepo)

		itemRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.NewNotFound("item", "99")).Once()

		_, err := svc.CheckAvailability(ctx, 99, "2026-09-01", "2026-09-05")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestItemService_OwnerAuthorization(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can update", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewItemService(itemRepo, new(MockOrderRepo))

		itemRepo.On("GetByID", ctx, int32(10)).Return(drillItem(10, 3), nil).Once()
		itemRepo.On("Update", ctx, mock.MatchedBy(func(it *domain.Item) bool {
			return it.OwnerID == 3 // ownership survives the update
		})).Return(nil).Once()

		err := svc.UpdateItem(ctx, 3, &domain.Item{ID: 10, Title: "Cordless Drill XL", Pricing: domain.Pricing{PerDay: 120}})
		assert.NoError(t, err)
		itemRepo.AssertExpectations(t)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewItemService(itemRepo, new(MockOrderRepo))

		itemRepo.On("GetByID", ctx, int32(10)).Return(drillItem(10, 3), nil).Once()

		err := svc.UpdateItem(ctx, 8, &domain.Item{ID: 10, Title: "Hijacked"})
		assert.ErrorIs(t, err, domain.ErrForbidden)
		itemRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewItemService(itemRepo, new(MockOrderRepo))

		itemRepo.On("GetByID", ctx, int32(10)).Return(drillItem(10, 3), nil).Once()

		err := svc.DeleteItem(ctx, 8, 10)
		assert.ErrorIs(t, err, domain.ErrForbidden)
		itemRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestItemService_CreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects missing title and zero price", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewItemService(itemRepo, new(MockOrderRepo))

		err := svc.CreateItem(ctx, &domain.Item{OwnerID: 3})
		var ve *domain.ValidationError
		assert.ErrorAs(t, err, &ve)
		itemRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates a valid item", func(t *testing.T) {
		itemRepo := new(MockItemRepo)
		svc := service.NewItemService(itemRepo, new(MockOrderRepo))

		item := &domain.Item{OwnerID: 3, Title: "Ladder", Pricing: domain.Pricing{PerDay: 50}}
		itemRepo.On("Create", ctx, item).Return(nil).Once()

		assert.NoError(t, svc.CreateItem(ctx, item))
		itemRepo.AssertExpectations(t)
	})
}
