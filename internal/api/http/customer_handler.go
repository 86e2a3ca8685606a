package http

import (
	"net/http"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

type CustomerHandler struct {
	svc service.CustomerService
}

func NewCustomerHandler(svc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{svc: svc}
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(customers))
}

func (h *CustomerHandler) Search(w http.ResponseWriter, r *http.Request) {
	customers, err := h.svc.SearchCustomers(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(customers))
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	customer, err := h.svc.GetCustomer(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.CreateCustomer(r.Context(), &customer); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var customer domain.Customer
	if err := decodeJSON(r, &customer); err != nil {
		respondError(w, err)
		return
	}
	customer.ID = id
	if err := h.svc.UpdateCustomer(r.Context(), &customer); err != nil {
		respondError(w, err)
		return
	}
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, emptyList(customers))
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.DeleteCustomer(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(customers))
}

func (h *CustomerHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.GenerateCustomers(r.Context(), req.Amount); err != nil {
		respondError(w, err)
		return
	}
	customers, err := h.svc.ListCustomers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, emptyList(customers))
}
