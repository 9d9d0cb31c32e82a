package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusReturned  OrderStatus = "returned"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusReturned, OrderStatusCancelled:
		return true
	}
	return false
}

// orderTransitions is the allowed-transition table for the status
// lifecycle. Returned and cancelled are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:   {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {OrderStatusReturned},
}

// CanTransition reports whether an order may move from one status to
// another. Invalid target statuses are never reachable.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range orderTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCOD  PaymentMethod = "COD"
	PaymentMethodCard PaymentMethod = "CARD"
	PaymentMethodUPI  PaymentMethod = "UPI"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCOD, PaymentMethodCard, PaymentMethodUPI:
		return true
	}
	return false
}

type DeliveryType string

const (
	DeliveryTypeStandard DeliveryType = "standard"
	DeliveryTypeExpress  DeliveryType = "express"
)

// OrderLine is one rented item within an order. OwnerID is a snapshot of
// the item's owner at order creation time; it is stamped server-side and
// stays accurate even if the item is later reassigned or deleted.
type OrderLine struct {
	ID         int32      `json:"id"`
	OrderID    int32      `json:"order_id"`
	ItemID     int32      `json:"item_id"`
	OwnerID    int32      `json:"owner_id"`
	Quantity   int32      `json:"quantity"`
	RentalType RentalType `json:"rental_type"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	LineTotal  int32      `json:"line_total"`
	Item       *Item      `json:"item,omitempty"` // populated on fetch
}

// ShippingAddress is a denormalized snapshot copied onto the order at
// checkout, not a live reference to the addresses table.
type ShippingAddress struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Landmark    string `json:"landmark,omitempty"`
	AddressType string `json:"address_type,omitempty"`
}

type Order struct {
	ID              int32           `json:"id"`
	Reference       string          `json:"reference"`
	RenterID        int32           `json:"renter_id"`
	Renter          *User           `json:"renter,omitempty"`
	Lines           []OrderLine     `json:"items"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	Subtotal        int32           `json:"subtotal"`
	Tax             int32           `json:"tax"`
	DeliveryFee     int32           `json:"delivery_fee"`
	SecurityDeposit int32           `json:"security_deposit"`
	TotalAmount     int32           `json:"total_amount"`
	DeliveryType    DeliveryType    `json:"delivery_type"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	Status          OrderStatus     `json:"status"`
	CreatedOn       time.Time       `json:"created_on"`
	UpdatedOn       time.Time       `json:"updated_on"`
}
