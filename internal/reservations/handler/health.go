package handler

import (
	"context"
	"net/http"
	"time"

	"hostelbook/pkg/config"
	apperrors "hostelbook/pkg/errors"
	apphttp "hostelbook/pkg/http"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodGet, "/health", h.Health)
	router.HandlerFunc(http.MethodGet, "/ready", h.Ready)
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := apphttp.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"}); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

// Ready reports whether the service can reach its database.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.cfg.Client == nil || h.cfg.Client.Mongo == nil {
		h.writeUnavailable(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.cfg.Client.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		h.cfg.Log.Warn("Readiness probe failed", "error", err)
		h.writeUnavailable(w)
		return
	}

	if err := apphttp.WriteJSON(w, http.StatusOK, map[string]string{"status": "ready"}); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *HealthHandler) writeUnavailable(w http.ResponseWriter) {
	if err := apphttp.WriteError(w, apperrors.Unavailable("Reservation service")); err != nil {
		h.cfg.Log.Error("Failed to write error response", "error", err)
	}
}
