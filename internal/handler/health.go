package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/osse101/CraftMarket_Go/internal/database"
	"github.com/osse101/CraftMarket_Go/internal/logger"
)

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message,omitempty"`
	Checks  map[string]string `json:"checks,omitempty"`
}

// ReadyChecker reports whether an in-memory component has finished loading
type ReadyChecker interface {
	Loaded() bool
}

const readyPingTimeout = 2 * time.Second

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz checks database connectivity and that the recipe catalog is loaded.
// Every check runs; the response lists each outcome.
// @Summary Readiness check
// @Description Returns OK if the database is reachable and the recipe catalog has been loaded
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(dbPool database.Pool, catalog ReadyChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := map[string]string{"database": "ok", "catalog": "ok"}
		var failures []string

		ctx, cancel := context.WithTimeout(r.Context(), readyPingTimeout)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			logger.FromContext(r.Context()).Error("Readiness check failed", "check", "database", "error", err)
			checks["database"] = "unreachable"
			failures = append(failures, "database connection failed")
		}

		if catalog != nil && !catalog.Loaded() {
			checks["catalog"] = "not loaded"
			failures = append(failures, "recipe catalog not loaded")
		}

		if len(failures) > 0 {
			respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
				Status:  "unavailable",
				Message: strings.Join(failures, "; "),
				Checks:  checks,
			})
			return
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok", Checks: checks})
	}
}
