package http

import (
	"net/http"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

type generateRequest struct {
	Amount int32 `json:"amount"`
}

type CompanyHandler struct {
	svc service.CompanyService
}

func NewCompanyHandler(svc service.CompanyService) *CompanyHandler {
	return &CompanyHandler{svc: svc}
}

func (h *CompanyHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.ListCompanies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(companies))
}

func (h *CompanyHandler) Search(w http.ResponseWriter, r *http.Request) {
	companies, err := h.svc.SearchCompanies(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(companies))
}

func (h *CompanyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	company, err := h.svc.GetCompany(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, company)
}

func (h *CompanyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var company domain.Company
	if err := decodeJSON(r, &company); err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.CreateCompany(r.Context(), &company); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, company)
}

func (h *CompanyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var company domain.Company
	if err := decodeJSON(r, &company); err != nil {
		respondError(w, err)
		return
	}
	company.ID = id
	if err := h.svc.UpdateCompany(r.Context(), &company); err != nil {
		respondError(w, err)
		return
	}
	companies, err := h.svc.ListCompanies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, emptyList(companies))
}

func (h *CompanyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.DeleteCompany(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	companies, err := h.svc.ListCompanies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(companies))
}

func (h *CompanyHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.GenerateCompanies(r.Context(), req.Amount); err != nil {
		respondError(w, err)
		return
	}
	companies, err := h.svc.ListCompanies(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, emptyList(companies))
}

// emptyList keeps "no rows" serializing as [] instead of null.
func emptyList[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
