package domain

type RentalType string

const (
	RentalTypePerDay   RentalType = "per_day"
	RentalTypePerWeek  RentalType = "per_week"
	RentalTypePerMonth RentalType = "per_month"
)

func (rt RentalType) Valid() bool {
	switch rt {
	case RentalTypePerDay, RentalTypePerWeek, RentalTypePerMonth:
		return true
	}
	return false
}

// CartEntry is one line in a user's cart. Rental dates are yyyy-mm-dd.
type CartEntry struct {
	ID         int32      `json:"id"`
	ItemID     int32      `json:"item_id"`
	RentalType RentalType `json:"rental_type"`
	StartDate  string     `json:"rental_start_date"`
	EndDate    string     `json:"rental_end_date"`
	Quantity   int32      `json:"quantity"`
}

// Cart is the per-user cart aggregate. Version is an optimistic
// concurrency token: every mutation must carry the version it read, and
// the store rejects writes against a stale version.
type Cart struct {
	UserID  int32       `json:"user_id"`
	Version int32       `json:"version"`
	Entries []CartEntry `json:"entries"`
}

// FindByItem returns the entry for an item id, or nil. The cart holds at
// most one entry per item; adds for an item already present merge into
// that entry's quantity regardless of tier or dates.
func (c *Cart) FindByItem(itemID int32) *CartEntry {
	for i := range c.Entries {
		if c.Entries[i].ItemID == itemID {
			return &c.Entries[i]
		}
	}
	return nil
}

// FindEntry returns the entry with the given cart-entry id, or nil.
func (c *Cart) FindEntry(entryID int32) *CartEntry {
	for i := range c.Entries {
		if c.Entries[i].ID == entryID {
			return &c.Entries[i]
		}
	}
	return nil
}

// CartLine is a cart entry joined with live item data for display.
type CartLine struct {
	EntryID    int32      `json:"id"`
	ItemID     int32      `json:"item_id"`
	Title      string     `json:"title"`
	Image      string     `json:"image"`
	Price      int32      `json:"price"`
	RentalType RentalType `json:"rental_type"`
	StartDate  string     `json:"rental_start_date"`
	EndDate    string     `json:"rental_end_date"`
	Quantity   int32      `json:"quantity"`
	OwnerID    int32      `json:"owner_id"`
}
