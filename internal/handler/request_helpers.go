package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// maxBodyBytes bounds request bodies, bulk price submissions included
const maxBodyBytes = 1 << 20

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// If it returns an error, the response has already been written and the handler should return.
//
// Example usage:
//
//	var req SubmitPricesRequest
//	if err := DecodeAndValidateRequest(r, w, &req, OpSubmitPrices); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}
	return nil
}

// pathID parses a positive integer route parameter.
// If ok is false, the response has already been written.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidPathParamFmt, name))
		return 0, false
	}
	return id, true
}

// optionalIntQuery parses an optional integer query parameter. Absent yields nil.
// If ok is false, the response has already been written.
func optionalIntQuery(w http.ResponseWriter, r *http.Request, name string) (*int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParamFmt, name))
		return nil, false
	}
	return &v, true
}
