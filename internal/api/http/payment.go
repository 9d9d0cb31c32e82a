package http

import (
	"net/http"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
)

type paymentHandler struct {
	paymentSvc service.PaymentService
}

type recordPaymentRequest struct {
	OrderID int32 `json:"order_id"`
}

func (h *paymentHandler) record(w http.ResponseWriter, r *http.Request) {
	var req recordPaymentRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.OrderID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid order_id"})
		return
	}

	payment, err := h.paymentSvc.RecordPayment(r.Context(), userID(r.Context()), req.OrderID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, payment)
}

func (h *paymentHandler) list(w http.ResponseWriter, r *http.Request) {
	payments, err := h.paymentSvc.ListPayments(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if payments == nil {
		payments = []domain.Payment{}
	}
	writeJSON(w, http.StatusOK, payments)
}
