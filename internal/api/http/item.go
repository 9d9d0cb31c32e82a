package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
)

// pathID parses the named path variable as an id. A zero return means
// the caller already got a 400.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid " + name})
		return 0, false
	}
	return int32(id), true
}

type itemHandler struct {
	itemSvc service.ItemService
}

type itemRequest struct {
	Title       string               `json:"title"`
	Description string               `json:"description"`
	CategoryID  int32                `json:"category_id"`
	Pricing     domain.Pricing       `json:"pricing"`
	Condition   domain.ItemCondition `json:"condition"`
	Images      []string             `json:"images"`
	Quantity    int32                `json:"quantity"`
	Deposit     int32                `json:"deposit"`
	Location    string               `json:"location"`
}

func (req *itemRequest) toDomain() *domain.Item {
	return &domain.Item{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		Pricing:     req.Pricing,
		Condition:   req.Condition,
		Images:      req.Images,
		Quantity:    req.Quantity,
		Deposit:     req.Deposit,
		Location:    req.Location,
	}
}

func (h *itemHandler) create(w http.ResponseWriter, r *http.Request) {
	var req itemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item := req.toDomain()
	item.OwnerID = userID(r.Context())
	if err := h.itemSvc.CreateItem(r.Context(), item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *itemHandler) get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	item, err := h.itemSvc.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *itemHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req itemRequest
	if !decodeBody(w, r, &req) {
		return
	}

	item := req.toDomain()
	item.ID = id
	if err := h.itemSvc.UpdateItem(r.Context(), userID(r.Context()), item); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *itemHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.itemSvc.DeleteItem(r.Context(), userID(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "item deleted"})
}

func (h *itemHandler) list(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemSvc.ListItems(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *itemHandler) listFeatured(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemSvc.ListFeatured(r.Context(), r.URL.Query().Get("location"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *itemHandler) listMine(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemSvc.ListMyItems(r.Context(), userID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

type availabilityRequest struct {
	ItemID    int32  `json:"item_id"`
	StartDate string `json:"rental_start_date"`
	EndDate   string `json:"rental_end_date"`
}

type availabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message,omitempty"`
}

// checkAvailability answers 200 whether or not the window is free; an
// occupied window is a normal answer, not an error.
func (h *itemHandler) checkAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if !decodeBody(w, r, &req) {
		return
	}

	available, err := h.itemSvc.CheckAvailability(r.Context(), req.ItemID, req.StartDate, req.EndDate)
	if err != nil {
		writeError(w, r, err)
		return
	}

	resp := availabilityResponse{Available: available}
	if !available {
		resp.Message = "item is already booked for the selected dates"
	}
	writeJSON(w, http.StatusOK, resp)
}
