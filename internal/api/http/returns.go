package http

import (
	"net/http"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
)

type returnHandler struct {
	returnSvc service.ReturnService
}

type returnRequestBody struct {
	OrderID int32  `json:"order_id"`
	Reason  string `json:"reason"`
}

func (h *returnHandler) create(w http.ResponseWriter, r *http.Request) {
	var req returnRequestBody
	if !decodeBody(w, r, &req) {
		return
	}
	if req.OrderID <= 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid order_id"})
		return
	}

	request, err := h.returnSvc.RequestReturn(r.Context(), userID(r.Context()), req.OrderID, req.Reason)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (h *returnHandler) list(w http.ResponseWriter, r *http.Request) {
	requests, err := h.returnSvc.ListReturnRequests(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if requests == nil {
		requests = []domain.ReturnRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}
