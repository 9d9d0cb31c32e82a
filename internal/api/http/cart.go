package http

import (
	"net/http"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
)

type cartHandler struct {
	cartSvc service.CartService
}

type cartResponse struct {
	Items []domain.CartLine `json:"items"`
}

func (h *cartHandler) get(w http.ResponseWriter, r *http.Request) {
	lines, err := h.cartSvc.GetCart(r.Context(), userID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: lines})
}

type addToCartRequest struct {
	ItemID     int32             `json:"item_id"`
	RentalType domain.RentalType `json:"rental_type"`
	StartDate  string            `json:"rental_start_date"`
	EndDate    string            `json:"rental_end_date"`
	Quantity   int32             `json:"quantity"`
}

func (h *cartHandler) add(w http.ResponseWriter, r *http.Request) {
	var req addToCartRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	lines, err := h.cartSvc.AddToCart(r.Context(), userID(r.Context()),
		req.ItemID, req.RentalType, req.StartDate, req.EndDate, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: lines})
}

type updateQuantityRequest struct {
	Quantity int32 `json:"quantity"`
}

func (h *cartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(w, r, "entryId")
	if !ok {
		return
	}
	var req updateQuantityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	lines, err := h.cartSvc.UpdateQuantity(r.Context(), userID(r.Context()), entryID, req.Quantity)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: lines})
}

func (h *cartHandler) remove(w http.ResponseWriter, r *http.Request) {
	entryID, ok := pathID(w, r, "entryId")
	if !ok {
		return
	}

	lines, err := h.cartSvc.RemoveFromCart(r.Context(), userID(r.Context()), entryID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: lines})
}

func (h *cartHandler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cartSvc.ClearCart(r.Context(), userID(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{Items: []domain.CartLine{}})
}
