package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and writes the mapped user-facing error
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err)
	} else {
		log.Warn(op+" rejected", "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and messages
// that do not expose internal details.
func mapServiceErrorToUserMessage(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, ErrMsgUnknownError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrRecipeNotFound):
		return http.StatusNotFound, ErrMsgRecipeNotFoundError
	case errors.Is(err, domain.ErrServerNotFound):
		return http.StatusNotFound, ErrMsgServerNotFoundError
	case errors.Is(err, domain.ErrServerInactive):
		return http.StatusBadRequest, ErrMsgServerInactiveError
	case errors.Is(err, domain.ErrProfessionRequired):
		return http.StatusBadRequest, ErrMsgProfessionRequiredError
	case errors.Is(err, domain.ErrInvalidSortMetric):
		return http.StatusBadRequest, ErrMsgInvalidSortMetricError
	case errors.Is(err, domain.ErrInvalidLevelRange):
		return http.StatusBadRequest, ErrMsgInvalidLevelRangeError
	case errors.Is(err, domain.ErrInvalidPrice):
		return http.StatusBadRequest, ErrMsgInvalidPriceError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrDatabaseError):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
