package domain

import "time"

type Notification struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedOn time.Time `json:"created_on"`
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

type Payment struct {
	ID      int32         `json:"id"`
	OrderID int32         `json:"order_id"`
	Method  PaymentMethod `json:"payment_method"`
	Amount  int32         `json:"amount"`
	Status  PaymentStatus `json:"status"`
	PaidOn  time.Time     `json:"payment_date,omitzero"`
}

type ReturnStatus string

const (
	ReturnStatusPending  ReturnStatus = "pending"
	ReturnStatusApproved ReturnStatus = "approved"
	ReturnStatusRejected ReturnStatus = "rejected"
)

type ReturnRequest struct {
	ID        int32        `json:"id"`
	OrderID   int32        `json:"order_id"`
	UserID    int32        `json:"user_id"`
	Reason    string       `json:"reason"`
	Status    ReturnStatus `json:"status"`
	CreatedOn time.Time    `json:"created_on"`
}
