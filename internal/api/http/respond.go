package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/service"

	"github.com/gorilla/mux"
)

type errorResponse struct {
	Error string `json:"error"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// respondError maps the service error taxonomy onto HTTP status codes:
// validation 400, unknown id 404, uniqueness/reference conflicts 409, the
// rest 500.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrDuplicate), errors.Is(err, service.ErrInUse):
		status = http.StatusConflict
	}
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", "error", err)
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.ErrInvalidInput
	}
	return nil
}

func pathID(r *http.Request) (int32, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, service.ErrInvalidInput
	}
	return int32(id), nil
}
