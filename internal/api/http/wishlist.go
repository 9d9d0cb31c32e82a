package http

import (
	"net/http"

	"rentkart-backend/internal/service"
)

type wishlistHandler struct {
	wishlistSvc service.WishlistService
}

type wishlistAddRequest struct {
	ItemID int32 `json:"item_id"`
}

func (h *wishlistHandler) add(w http.ResponseWriter, r *http.Request) {
	var req wishlistAddRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.ItemID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid item_id"})
		return
	}

	if err := h.wishlistSvc.AddItem(r.Context(), userID(r.Context()), req.ItemID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "item added to wishlist"})
}

func (h *wishlistHandler) remove(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "itemId")
	if !ok {
		return
	}
	if err := h.wishlistSvc.RemoveItem(r.Context(), userID(r.Context()), itemID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "item removed from wishlist"})
}

func (h *wishlistHandler) get(w http.ResponseWriter, r *http.Request) {
	wishlist, err := h.wishlistSvc.GetWishlist(r.Context(), userID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, wishlist)
}
