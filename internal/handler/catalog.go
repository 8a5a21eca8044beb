package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CraftMarket_Go/internal/domain"
)

// ServerLister lists servers open for resolution
type ServerLister interface {
	ListActiveServers(ctx context.Context) ([]domain.Server, error)
}

// ProfessionLister lists the professions known to the catalog
type ProfessionLister interface {
	Professions() []string
}

// ProfessionsResponse lists the professions recipes can be ranked by
type ProfessionsResponse struct {
	Professions []string `json:"professions"`
}

// HandleListServers lists active servers in display order
// @Summary List servers
// @Tags catalog
// @Produce json
// @Success 200 {array} domain.Server
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/servers [get]
func HandleListServers(servers ServerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := servers.ListActiveServers(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListServers, err)
			return
		}
		respondJSON(w, http.StatusOK, list)
	}
}

// HandleListProfessions lists the distinct recipe professions
// @Summary List professions
// @Tags catalog
// @Produce json
// @Success 200 {object} ProfessionsResponse
// @Router /api/v1/professions [get]
func HandleListProfessions(professions ProfessionLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := professions.Professions()
		if list == nil {
			list = []string{}
		}
		respondJSON(w, http.StatusOK, ProfessionsResponse{Professions: list})
	}
}
