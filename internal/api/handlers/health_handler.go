package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/userweb/engine/internal/api/types"
	"github.com/userweb/engine/pkg/logger"
)

// Pinger reports whether a backing store is reachable. *sql.DB satisfies it.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db      Pinger
	timeout time.Duration
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, timeout: 2 * time.Second}
}

func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"status": "ok"}})
}

func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			logger.L().Warn("readiness check failed", zap.Error(err))
			writeJSON(w, http.StatusServiceUnavailable, types.APIResponse{Success: false, Error: &types.APIError{Code: "unavailable", Message: "database unavailable"}})
			return
		}
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]string{"status": "ready"}})
}
