package http

import (
	"net/http"
	"strconv"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"
)

type rentRequest struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type CarHandler struct {
	svc service.CarService
}

func NewCarHandler(svc service.CarService) *CarHandler {
	return &CarHandler{svc: svc}
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.svc.ListCars(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(cars))
}

func (h *CarHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var maxDailyPrice *float64
	if raw := q.Get("maxDailyPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			respondError(w, service.ErrInvalidInput)
			return
		}
		maxDailyPrice = &price
	}

	cars, err := h.svc.SearchCars(r.Context(), q.Get("q"), q.Get("type"), maxDailyPrice)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(cars))
}

func (h *CarHandler) Types(w http.ResponseWriter, r *http.Request) {
	types, err := h.svc.ListCarTypes(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(types))
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	car, err := h.svc.GetCar(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var car domain.Car
	if err := decodeJSON(r, &car); err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.CreateCar(r.Context(), &car); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var car domain.Car
	if err := decodeJSON(r, &car); err != nil {
		respondError(w, err)
		return
	}
	car.ID = id
	if err := h.svc.UpdateCar(r.Context(), &car); err != nil {
		respondError(w, err)
		return
	}
	cars, err := h.svc.ListCars(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, emptyList(cars))
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.DeleteCar(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	cars, err := h.svc.ListCars(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(cars))
}

func (h *CarHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteAllCars(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	cars, err := h.svc.ListCars(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, emptyList(cars))
}

func (h *CarHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	if err := h.svc.GenerateCars(r.Context(), req.Amount); err != nil {
		respondError(w, err)
		return
	}
	cars, err := h.svc.ListCars(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, emptyList(cars))
}

func (h *CarHandler) Rent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, err)
		return
	}
	var req rentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		respondError(w, err)
		return
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		respondError(w, err)
		return
	}

	rental, err := h.svc.RentCar(r.Context(), id, startDate, endDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, rental)
}

// parseDate accepts RFC 3339 timestamps or plain yyyy-mm-dd dates.
func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, service.ErrInvalidInput
	}
	return t, nil
}
