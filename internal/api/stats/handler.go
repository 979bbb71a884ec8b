package stats

import (
	"context"
	"net/http"

	"skillscenter/internal/domain"
	"skillscenter/internal/pkg/logger"
	"skillscenter/internal/pkg/respond"
)

type StatsService interface {
	Dashboard(ctx context.Context) (domain.DashboardStats, error)
}

type Handler struct {
	Service StatsService
	Logger  logger.Logger
}

func NewHandler(svc StatsService, log logger.Logger) *Handler {
	return &Handler{Service: svc, Logger: log}
}

// DashboardHandler lida com GET /api/stats.
// @Summary Estatísticas do painel administrativo
// @Tags stats
// @Produce json
// @Success 200 {object} domain.DashboardStats
// @Failure 401 {object} domain.ErrorResponse "Not authorized"
// @Failure 500 {object} domain.ErrorResponse "Server error"
// @Security CookieAuth
// @Router /stats [get]
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.Dashboard(r.Context())
	if err != nil {
		respond.Error(w, r, h.Logger, err)
		return
	}
	respond.JSON(w, http.StatusOK, stats)
}
