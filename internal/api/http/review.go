package http

import (
	"net/http"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
)

type reviewHandler struct {
	reviewSvc service.ReviewService
}

type reviewRequest struct {
	ItemID  int32  `json:"item_id"`
	Rating  int32  `json:"rating"`
	Comment string `json:"comment"`
}

func (h *reviewHandler) create(w http.ResponseWriter, r *http.Request) {
	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	review := &domain.Review{
		ItemID:  req.ItemID,
		UserID:  userID(r.Context()),
		Rating:  req.Rating,
		Comment: req.Comment,
	}
	if err := h.reviewSvc.AddReview(r.Context(), review); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

func (h *reviewHandler) listByItem(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	reviews, err := h.reviewSvc.ListReviews(r.Context(), itemID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	writeJSON(w, http.StatusOK, reviews)
}
