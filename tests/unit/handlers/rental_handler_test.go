package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRentalHandler_List(t *testing.T) {
	router, m := newTestRouter()

	start := time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)
	m.rental.On("ListRentals", mock.Anything).Return([]domain.Rental{
		{
			ID:         11,
			RentalDate: start,
			ReturnDate: start.AddDate(0, 0, 4),
			DailyRate:  25,
			Duration:   "4 days",
			TotalPrice: "$100.00",
			Status:     domain.RentalStatusReturned,
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/rentals", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var rentals []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rentals))
	assert.Len(t, rentals, 1)
	assert.Equal(t, "4 days", rentals[0]["duration"])
	assert.Equal(t, "$100.00", rentals[0]["totalPrice"])
	assert.Equal(t, "Returned", rentals[0]["status"])
}

func TestRentalHandler_Get(t *testing.T) {
	router, m := newTestRouter()

	t.Run("NotFound", func(t *testing.T) {
		m.rental.On("GetRental", mock.Anything, int32(99)).Return(nil, fmt.Errorf("rental 99 %w", service.ErrNotFound))

		req := httptest.NewRequest(http.MethodGet, "/api/rentals/99", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestRentalHandler_Create(t *testing.T) {
	router, m := newTestRouter()

	t.Run("Success", func(t *testing.T) {
		m.rental.On("CreateRental", mock.Anything, mock.MatchedBy(func(rt *domain.Rental) bool {
			return rt.Customer.ID == 9 && rt.Car.ID == 3
		})).Return(nil).Once()

		body := `{"customer":{"id":9},"car":{"id":3},"rentalDate":"2026-09-01T00:00:00Z","returnDate":"2026-09-05T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/api/rentals", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("InvalidDatesRejected", func(t *testing.T) {
		m.rental.On("CreateRental", mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: return date must not be before rental date", service.ErrInvalidInput)).Once()

		body := `{"customer":{"id":9},"car":{"id":3},"rentalDate":"2026-09-05T00:00:00Z","returnDate":"2026-09-01T00:00:00Z"}`
		req := httptest.NewRequest(http.MethodPost, "/api/rentals", strings.NewReader(body))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRentalHandler_Generate(t *testing.T) {
	router, m := newTestRouter()

	t.Run("Success", func(t *testing.T) {
		m.rental.On("GenerateRentals", mock.Anything, int32(10)).Return(nil).Once()
		m.rental.On("ListRentals", mock.Anything).Return([]domain.Rental{{ID: 1}}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/rentals/generate", strings.NewReader(`{"amount":10}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
	})

	t.Run("MissingPrerequisites", func(t *testing.T) {
		m.rental.On("GenerateRentals", mock.Anything, int32(10)).
			Return(fmt.Errorf("%w: cannot generate rentals: no cars exist", service.ErrInvalidInput)).Once()

		req := httptest.NewRequest(http.MethodPost, "/api/rentals/generate", strings.NewReader(`{"amount":10}`))
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
