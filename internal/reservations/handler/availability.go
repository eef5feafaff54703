package handler

import (
	"net/http"

	"hostelbook/internal/reservations/service"
	"hostelbook/pkg/booking"
	"hostelbook/pkg/config"
	apperrors "hostelbook/pkg/errors"
	apphttp "hostelbook/pkg/http"

	"github.com/julienschmidt/httprouter"
)

type AvailabilityHandler struct {
	service service.AvailabilityService
	cfg     *config.Config
}

func NewAvailabilityHandler(service service.AvailabilityService, cfg *config.Config) *AvailabilityHandler {
	return &AvailabilityHandler{service: service, cfg: cfg}
}

func (h *AvailabilityHandler) RegisterRoutes(router *httprouter.Router) {
	router.Handle(http.MethodGet, "/api/v1/hostels/:hostelId/availability", h.Report)
}

func (h *AvailabilityHandler) Report(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	date := booking.Today()
	if s := r.URL.Query().Get("date"); s != "" {
		parsed, err := booking.ParseDate(s)
		if err != nil {
			h.writeError(w, apperrors.InvalidInput("date must be in YYYY-MM-DD format"))
			return
		}
		date = parsed
	}

	report, err := h.service.Report(r.Context(), params.ByName("hostelId"), date)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := apphttp.WriteJSON(w, http.StatusOK, report); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *AvailabilityHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := apphttp.WriteError(w, err); writeErr != nil {
		h.cfg.Log.Error("Failed to write error response", "error", writeErr)
	}
}
