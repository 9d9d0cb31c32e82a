package domain

import "time"

type AddressType string

const (
	AddressTypeHome   AddressType = "home"
	AddressTypeOffice AddressType = "office"
)

// Address belongs to exactly one user. At most one address per user may
// have IsDefault set; the store clears the others when a new default is
// written.
type Address struct {
	ID          int32       `json:"id"`
	UserID      int32       `json:"user_id"`
	FullName    string      `json:"full_name"`
	Email       string      `json:"email"`
	Phone       string      `json:"phone"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	State       string      `json:"state"`
	Pincode     string      `json:"pincode"`
	Landmark    string      `json:"landmark,omitempty"`
	AddressType AddressType `json:"address_type"`
	IsDefault   bool        `json:"is_default"`
	CreatedOn   time.Time   `json:"created_on"`
	UpdatedOn   time.Time   `json:"updated_on"`
}

// Snapshot copies the address into the denormalized form stored on an
// order.
func (a *Address) Snapshot() ShippingAddress {
	return ShippingAddress{
		FullName:    a.FullName,
		Email:       a.Email,
		Phone:       a.Phone,
		Address:     a.Address,
		City:        a.City,
		State:       a.State,
		Pincode:     a.Pincode,
		Landmark:    a.Landmark,
		AddressType: string(a.AddressType),
	}
}
