package http

import (
	"net/http"

	"rentkart-backend/internal/domain"
	"rentkart-backend/internal/service"
)

type addressHandler struct {
	addressSvc service.AddressService
}

type addressRequest struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Landmark    string `json:"landmark"`
	AddressType string `json:"address_type"`
	IsDefault   bool   `json:"is_default"`
}

func (req *addressRequest) toDomain() *domain.Address {
	return &domain.Address{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		Pincode:     req.Pincode,
		Landmark:    req.Landmark,
		AddressType: domain.AddressType(req.AddressType),
		IsDefault:   req.IsDefault,
	}
}

func (h *addressHandler) create(w http.ResponseWriter, r *http.Request) {
	var req addressRequest
	if !decodeBody(w, r, &req) {
		return
	}

	addr := req.toDomain()
	addr.UserID = userID(r.Context())
	if err := h.addressSvc.AddAddress(r.Context(), addr); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, addr)
}

func (h *addressHandler) update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req addressRequest
	if !decodeBody(w, r, &req) {
		return
	}

	addr := req.toDomain()
	addr.ID = id
	addr.UserID = userID(r.Context())
	if err := h.addressSvc.UpdateAddress(r.Context(), addr); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, addr)
}

func (h *addressHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.addressSvc.DeleteAddress(r.Context(), userID(r.Context()), id); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "address deleted"})
}

func (h *addressHandler) list(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.addressSvc.ListAddresses(r.Context(), userID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	if addresses == nil {
		addresses = []domain.Address{}
	}
	writeJSON(w, http.StatusOK, addresses)
}
