package statsservice

import (
	"net/http"

	"assettag/providers"
	"assettag/utils"
)

type StatsHandler struct {
	Service        StatsService
	AuthMiddleware providers.AuthMiddlewareService
}

func NewStatsHandler(service StatsService, auth providers.AuthMiddlewareService) *StatsHandler {
	return &StatsHandler{
		Service:        service,
		AuthMiddleware: auth,
	}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if _, err := h.AuthMiddleware.GetUserFromContext(r); err != nil {
		utils.RespondError(w, http.StatusUnauthorized, err, "unauthorized")
		return
	}

	stats, err := h.Service.GetDashboardStats(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, err, "failed to compute statistics")
		return
	}

	utils.RespondJSON(w, http.StatusOK, stats)
}
