package http

import (
	"net/http"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
)

type categoryHandler struct {
	categorySvc service.CategoryService
}

func (h *categoryHandler) list(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categorySvc.ListCategories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, categories)
}

type categoryRequest struct {
	Title string `json:"title"`
	Image string `json:"image"`
}

func (h *categoryHandler) create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	cat, err := h.categorySvc.CreateCategory(r.Context(), req.Title, req.Image)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}
