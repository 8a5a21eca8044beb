package handler

import (
	"net/http"

	"github.com/osse101/CraftMarket_Go/internal/domain"
	"github.com/osse101/CraftMarket_Go/internal/pricing"
)

// PriceEntry is one submitted price
type PriceEntry struct {
	ItemID int   `json:"item_id" validate:"gt=0"`
	Price  int64 `json:"price" validate:"price"`
}

// SubmitPricesRequest accepts either a single item_id/price pair or a prices list
type SubmitPricesRequest struct {
	ItemID      int          `json:"item_id,omitempty"`
	Price       int64        `json:"price,omitempty"`
	Prices      []PriceEntry `json:"prices,omitempty" validate:"max=500,dive"`
	SubmittedBy string       `json:"submitted_by,omitempty" validate:"max=100,excludesall=\x00\n\r\t"`
}

// entries returns the submitted prices, folding the single form into a list
func (r *SubmitPricesRequest) entries() []PriceEntry {
	if len(r.Prices) > 0 {
		return r.Prices
	}
	if r.ItemID == 0 && r.Price == 0 {
		return nil
	}
	return []PriceEntry{{ItemID: r.ItemID, Price: r.Price}}
}

// SubmitPricesResponse echoes the stored prices
type SubmitPricesResponse struct {
	Message string         `json:"message"`
	Prices  []domain.Price `json:"prices"`
}

// PriceResponse holds the current approved price, null when none exists
type PriceResponse struct {
	ItemID   int           `json:"item_id"`
	ServerID int           `json:"server_id"`
	Price    *domain.Price `json:"price"`
}

// MsgPricesSubmitted is returned after a successful submission
const MsgPricesSubmitted = "Prices submitted"

// HandleGetPrice returns the current approved price of an item
// @Summary Get current price
// @Tags prices
// @Produce json
// @Param serverID path int true "Server ID"
// @Param itemID path int true "Item ID"
// @Success 200 {object} PriceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/servers/{serverID}/items/{itemID}/price [get]
func HandleGetPrice(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID, itemID, ok := serverAndItem(w, r)
		if !ok {
			return
		}

		price, err := svc.GetCurrentPrice(r.Context(), itemID, serverID)
		if err != nil {
			respondServiceError(w, r, OpGetPrice, err)
			return
		}
		respondJSON(w, http.StatusOK, PriceResponse{ItemID: itemID, ServerID: serverID, Price: price})
	}
}

// HandleGetPriceHistory lists past submissions, newest first
// @Summary Get price history
// @Tags prices
// @Produce json
// @Param serverID path int true "Server ID"
// @Param itemID path int true "Item ID"
// @Param limit query int false "Maximum rows" default(50)
// @Success 200 {array} domain.PriceHistory
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/servers/{serverID}/items/{itemID}/price/history [get]
func HandleGetPriceHistory(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID, itemID, ok := serverAndItem(w, r)
		if !ok {
			return
		}
		limit, ok := optionalIntQuery(w, r, QueryLimit)
		if !ok {
			return
		}
		n := 0
		if limit != nil {
			n = *limit
		}

		history, err := svc.GetHistory(r.Context(), itemID, serverID, n)
		if err != nil {
			respondServiceError(w, r, OpGetPriceHistory, err)
			return
		}
		respondJSON(w, http.StatusOK, history)
	}
}

// HandleSubmitPrices records one or many prices in a single transaction
// @Summary Submit prices
// @Tags prices
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param serverID path int true "Server ID"
// @Param request body SubmitPricesRequest true "Single price or list of prices"
// @Success 201 {object} SubmitPricesResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/servers/{serverID}/prices [post]
func HandleSubmitPrices(svc pricing.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		serverID, ok := pathID(w, r, ParamServerID)
		if !ok {
			return
		}

		var req SubmitPricesRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpSubmitPrices); err != nil {
			return
		}
		entries := req.entries()
		if len(entries) == 0 {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequestError)
			return
		}
		submissions := make([]domain.PriceSubmission, 0, len(entries))
		for _, e := range entries {
			if err := GetValidator().ValidateStruct(e); err != nil {
				respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
					Error:  ErrMsgInvalidRequestSummary,
					Fields: FormatValidationError(err),
				})
				return
			}
			submissions = append(submissions, domain.PriceSubmission{ItemID: e.ItemID, Price: e.Price})
		}

		saved, err := svc.SubmitPrices(r.Context(), serverID, submissions, req.SubmittedBy)
		if err != nil {
			respondServiceError(w, r, OpSubmitPrices, err)
			return
		}
		respondJSON(w, http.StatusCreated, SubmitPricesResponse{Message: MsgPricesSubmitted, Prices: saved})
	}
}
