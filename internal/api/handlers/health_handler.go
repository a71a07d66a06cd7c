package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/skill-swap/backend/internal/api/types"
	appErr "github.com/skill-swap/backend/pkg/errors"
	"github.com/skill-swap/backend/pkg/logger"
	"go.uber.org/zap"
)

// Pinger checks that a backing dependency is reachable.
type Pinger func(ctx context.Context) error

type HealthHandler struct {
	ping Pinger
}

func NewHealthHandler(ping Pinger) *HealthHandler { return &HealthHandler{ping: ping} }

// Liveness godoc
// @Summary  Process is up
// @Tags     health
// @Produce  json
// @Success  200  {object}  types.HealthResponse
// @Router   /healthz [get]
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.HealthResponse{Status: "ok"})
}

// Readiness godoc
// @Summary  Database is reachable
// @Tags     health
// @Produce  json
// @Success  200  {object}  types.HealthResponse
// @Failure  503  {object}  types.ErrorResponse
// @Router   /readyz [get]
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.ping != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.ping(ctx); err != nil {
			logger.L().Warn("readiness check failed", zap.Error(err))
			writeErrorStr(w, http.StatusServiceUnavailable, appErr.CodeUnavailable, "database unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, types.HealthResponse{Status: "ready"})
}
