package http

import (
	"net/http"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
)

type orderHandler struct {
	orderSvc service.OrderService
}

type checkoutRequest struct {
	AddressID     int32                `json:"address_id"`
	DeliveryType  domain.DeliveryType  `json:"delivery_type"`
	PaymentMethod domain.PaymentMethod `json:"payment_method"`
}

func (h *orderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = domain.PaymentMethodCOD
	}

	order, err := h.orderSvc.Checkout(r.Context(), userID(r.Context()), service.CheckoutInput{
		AddressID:     req.AddressID,
		DeliveryType:  req.DeliveryType,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *orderHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	order, err := h.orderSvc.GetOrder(r.Context(), userID(r.Context()), isAdmin(r.Context()), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *orderHandler) listMine(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.ListMyOrders(r.Context(), userID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *orderHandler) listOwner(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderSvc.ListOwnerOrders(r.Context(), userID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

type updateStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

func (h *orderHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req updateStatusRequest
	if !decodeBody(w, r, &req) {
		return
	}
	h.applyStatus(w, r, id, req.Status)
}

func (h *orderHandler) markDelivered(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.applyStatus(w, r, id, domain.OrderStatusDelivered)
}

func (h *orderHandler) markReturned(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	h.applyStatus(w, r, id, domain.OrderStatusReturned)
}

func (h *orderHandler) applyStatus(w http.ResponseWriter, r *http.Request, orderID int32, status domain.OrderStatus) {
	order, err := h.orderSvc.UpdateStatus(r.Context(), userID(r.Context()), isAdmin(r.Context()), orderID, status)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
