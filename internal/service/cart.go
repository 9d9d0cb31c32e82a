package service

import (
	"context"
	"errors"
	"strconv"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/logger"
	"rentkart-backend/internal/repository"
	"rentkart-backend/internal/utils"
)

// casAttempts bounds the read-modify-write retry loop on version
// conflicts before giving up with domain.ErrVersionConflict.
const casAttempts = 3

type cartService struct {
	cartRepo repository.CartRepository
	itemRepo repository.ItemRepository
}

func NewCartService(cartRepo repository.CartRepository, itemRepo repository.ItemRepository) CartService {
	return &cartService{
		cartRepo: cartRepo,
		itemRepo: itemRepo,
	}
}

// GetCart returns the cart joined with live item data. Entries whose
// item has been deleted are dropped from the stored cart as a side
// effect, so a stale cart heals on read.
func (s *cartService) GetCart(ctx context.Context, userID int32) ([]domain.CartLine, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		cart, err := s.cartRepo.Get(ctx, userID)
		if err != nil {
			return nil, err
		}

		lines, stale, err := s.resolveLines(ctx, cart)
		if err != nil {
			return nil, err
		}
		if !stale {
			return lines, nil
		}

		// Persist the pruned cart; on a concurrent write, re-read and
		// try again.
		if err := s.cartRepo.Replace(ctx, cart); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				continue
			}
			return nil, err
		}
		// Replace rewrites the rows and scans fresh entry ids back into
		// cart.Entries; the lines must carry those, not the old ids.
		for i := range cart.Entries {
			lines[i].EntryID = cart.Entries[i].ID
		}
		return lines, nil
	}
	return nil, domain.ErrVersionConflict
}

func (s *cartService) AddToCart(ctx context.Context, userID int32, itemID int32, rentalType domain.RentalType, startDate, endDate string, quantity int32) ([]domain.CartLine, error) {
	var v domain.Validator
	v.Check(itemID > 0, "item_id", "is required")
	v.Check(rentalType.Valid(), "rental_type", "must be one of per_day, per_week, per_month")
	v.Check(quantity > 0, "quantity", "must be greater than zero")
	v.Require("rental_start_date", startDate)
	v.Require("rental_end_date", endDate)
	if _, err := utils.ParseRentalDate(startDate); startDate != "" && err != nil {
		v.Check(false, "rental_start_date", "must be a date in YYYY-MM-DD format")
	}
	if _, err := utils.ParseRentalDate(endDate); endDate != "" && err != nil {
		v.Check(false, "rental_end_date", "must be a date in YYYY-MM-DD format")
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		// One entry per item: a second add for the same item merges
		// into it, keeping the existing tier and dates.
		if entry := cart.FindByItem(itemID); entry != nil {
			entry.Quantity += quantity
			return nil
		}
		cart.Entries = append(cart.Entries, domain.CartEntry{
			ItemID:     itemID,
			RentalType: rentalType,
			StartDate:  startDate,
			EndDate:    endDate,
			Quantity:   quantity,
		})
		return nil
	})
}

func (s *cartService) UpdateQuantity(ctx context.Context, userID, entryID, quantity int32) ([]domain.CartLine, error) {
	var v domain.Validator
	v.Check(quantity > 0, "quantity", "must be greater than zero")
	if err := v.Err(); err != nil {
		return nil, err
	}

	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		entry := cart.FindEntry(entryID)
		if entry == nil {
			return domain.NewNotFound("cart entry", strconv.Itoa(int(entryID)))
		}
		entry.Quantity = quantity
		return nil
	})
}

// RemoveFromCart is idempotent: removing an entry that is not in the
// cart leaves it unchanged.
func (s *cartService) RemoveFromCart(ctx context.Context, userID, entryID int32) ([]domain.CartLine, error) {
	return s.mutate(ctx, userID, func(cart *domain.Cart) error {
		for i := range cart.Entries {
			if cart.Entries[i].ID == entryID {
				cart.Entries = append(cart.Entries[:i], cart.Entries[i+1:]...)
				break
			}
		}
		return nil
	})
}

func (s *cartService) ClearCart(ctx context.Context, userID int32) error {
	return s.cartRepo.Clear(ctx, userID)
}

// mutate runs a read-modify-write cycle under optimistic concurrency,
// retrying on version conflicts.
func (s *cartService) mutate(ctx context.Context, userID int32, fn func(*domain.Cart) error) ([]domain.CartLine, error) {
	for attempt := 0; attempt < casAttempts; attempt++ {
		cart, err := s.cartRepo.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		if err := fn(cart); err != nil {
			return nil, err
		}
		if err := s.cartRepo.Replace(ctx, cart); err != nil {
			if errors.Is(err, domain.ErrVersionConflict) {
				logger.Debug("cart version conflict, retrying", "user_id", userID, "attempt", attempt+1)
				continue
			}
			return nil, err
		}
		lines, _, err := s.resolveLines(ctx, cart)
		return lines, err
	}
	return nil, domain.ErrVersionConflict
}

// resolveLines joins cart entries with current item rows. Entries whose
// item no longer exists are removed from the cart in place; stale
// reports whether any were dropped.
func (s *cartService) resolveLines(ctx context.Context, cart *domain.Cart) ([]domain.CartLine, bool, error) {
	if len(cart.Entries) == 0 {
		return []domain.CartLine{}, false, nil
	}

	ids := make([]int32, 0, len(cart.Entries))
	for _, e := range cart.Entries {
		ids = append(ids, e.ItemID)
	}
	items, err := s.itemRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, false, err
	}

	lines := make([]domain.CartLine, 0, len(cart.Entries))
	kept := cart.Entries[:0]
	stale := false
	for _, e := range cart.Entries {
		item, ok := items[e.ItemID]
		if !ok {
			stale = true
			continue
		}
		kept = append(kept, e)
		image := ""
		if len(item.Images) > 0 {
			image = item.Images[0]
		}
		lines = append(lines, domain.CartLine{
			EntryID:    e.ID,
			ItemID:     e.ItemID,
			Title:      item.Title,
			Image:      image,
			Price:      item.Pricing.ForType(e.RentalType),
			RentalType: e.RentalType,
			StartDate:  e.StartDate,
			EndDate:    e.EndDate,
			Quantity:   e.Quantity,
			OwnerID:    item.OwnerID,
		})
	}
	cart.Entries = kept
	return lines, stale, nil
}
