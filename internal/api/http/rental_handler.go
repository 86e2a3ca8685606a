package http

import (
	"net/http"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

type RentalHandler struct {
	svc service.RentalService
}

func NewRentalHandler(svc service.RentalService) *RentalHandler {
	return &RentalHandler{svc: svc}
}

func (h *RentalHandler) List(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.svc.ListRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(rentals))
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	rental, err := h.svc.GetRental(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var rental domain.Rental
	if err := decodeJSON(r, &rental); err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.CreateRental(r.Context(), &rental); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

func (h *RentalHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.GenerateRentals(r.Context(), req.Amount); err != nil {
		respondError(w, err)
		return
	}
	rentals, err := h.svc.ListRentals(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, emptyList(rentals))
}
