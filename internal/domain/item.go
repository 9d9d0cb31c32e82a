package domain

import "time"

type ItemStatus string

const (
	ItemStatusAvailable   ItemStatus = "available"
	ItemStatusRented      ItemStatus = "rented"
	ItemStatusMaintenance ItemStatus = "maintenance"
)

type ItemCondition string

const (
	ItemConditionNew     ItemCondition = "New"
	ItemConditionLikeNew ItemCondition = "Like New"
	ItemConditionGood    ItemCondition = "Good"
	ItemConditionFair    ItemCondition = "Fair"
	ItemConditionUsed    ItemCondition = "Used"
)

// Pricing is the tiered price table for an item. PerDay is always set;
// PerWeek and PerMonth are optional (zero means the tier is not offered).
type Pricing struct {
	PerDay   int32 `json:"per_day"`
	PerWeek  int32 `json:"per_week,omitempty"`
	PerMonth int32 `json:"per_month,omitempty"`
}

// ForType returns the price for a rental type, falling back to the
// per-day price when the requested tier has no price configured.
func (p Pricing) ForType(rt RentalType) int32 {
	switch rt {
	case RentalTypePerWeek:
		if p.PerWeek > 0 {
			return p.PerWeek
		}
	case RentalTypePerMonth:
		if p.PerMonth > 0 {
			return p.PerMonth
		}
	}
	return p.PerDay
}

type Item struct {
	ID          int32         `json:"id"`
	OwnerID     int32         `json:"owner_id"`
	Owner       *User         `json:"owner,omitempty"` // populated on detail fetch
	CategoryID  int32         `json:"category_id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Pricing     Pricing       `json:"pricing"`
	Condition   ItemCondition `json:"condition"`
	Status      ItemStatus    `json:"status"`
	Images      []string      `json:"images"`
	Quantity    int32         `json:"quantity"`
	Deposit     int32         `json:"deposit"`
	Location    string        `json:"location"`
	IsFeatured  bool          `json:"is_featured"`
	CreatedOn   time.Time     `json:"created_on"`
	UpdatedOn   time.Time     `json:"updated_on"`
}
