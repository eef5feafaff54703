package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"hostelbook/internal/reservations/service"
	"hostelbook/pkg/booking"
	"hostelbook/pkg/config"
	apperrors "hostelbook/pkg/errors"
	apphttp "hostelbook/pkg/http"
	"hostelbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

const (
	HeaderClientID   = "X-Client-ID"
	HeaderClientRole = "X-Client-Role"
)

type ReservationHandler struct {
	service service.ReservationService
	cfg     *config.Config
}

func NewReservationHandler(service service.ReservationService, cfg *config.Config) *ReservationHandler {
	return &ReservationHandler{service: service, cfg: cfg}
}

func (h *ReservationHandler) RegisterRoutes(router *httprouter.Router) {
	router.HandlerFunc(http.MethodPost, "/api/v1/reservations", h.Create)
	router.HandlerFunc(http.MethodGet, "/api/v1/reservations", h.List)
	router.Handle(http.MethodGet, "/api/v1/reservations/id/:id", h.GetByID)
	router.Handle(http.MethodPatch, "/api/v1/reservations/id/:id", h.Update)
	router.Handle(http.MethodDelete, "/api/v1/reservations/id/:id", h.Cancel)
	router.Handle(http.MethodPost, "/api/v1/reservations/id/:id/decision", h.Decide)
}

type createReservationRequest struct {
	ClientID  string `json:"client_id,omitempty"`
	RoomID    string `json:"room_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Note      string `json:"note,omitempty"`
}

type updateReservationRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type decisionRequest struct {
	Approve *bool `json:"approve"`
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req createReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid JSON in request body"))
		return
	}

	start, end, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		h.writeError(w, err)
		return
	}

	reservation := &model.Reservation{
		ClientID:  req.ClientID,
		RoomID:    req.RoomID,
		StartDate: start,
		EndDate:   end,
		Note:      req.Note,
		CreatedAt: time.Now().UTC(),
	}

	if err := h.service.Propose(r.Context(), actor, reservation); err != nil {
		h.writeError(w, err)
		return
	}

	if err := apphttp.WriteCreated(w, reservation); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	limit, offset, err := apphttp.ExtractLimitOffset(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	reservations, count, err := h.service.List(r.Context(), actor, limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if reservations == nil {
		reservations = []*model.Reservation{}
	}

	if err := apphttp.WritePaginated(w, reservations, count, limit, offset); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) GetByID(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	reservation, err := h.service.GetByID(r.Context(), actor, params.ByName("id"))
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := apphttp.WriteSuccess(w, reservation); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req updateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid JSON in request body"))
		return
	}

	start, end, err := parseInterval(req.StartDate, req.EndDate)
	if err != nil {
		h.writeError(w, err)
		return
	}

	reservation, err := h.service.Update(r.Context(), actor, params.ByName("id"), start, end)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := apphttp.WriteSuccess(w, reservation); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.service.Cancel(r.Context(), actor, params.ByName("id")); err != nil {
		h.writeError(w, err)
		return
	}

	apphttp.WriteNoContent(w)
}

func (h *ReservationHandler) Decide(w http.ResponseWriter, r *http.Request, params httprouter.Params) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, apperrors.InvalidInput("Invalid JSON in request body"))
		return
	}
	if req.Approve == nil {
		h.writeError(w, apperrors.InvalidInput("'approve' field is required"))
		return
	}

	reservation, err := h.service.Decide(r.Context(), actor, params.ByName("id"), *req.Approve)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := apphttp.WriteSuccess(w, reservation); err != nil {
		h.cfg.Log.Error("Failed to write response", "error", err)
	}
}

func (h *ReservationHandler) writeError(w http.ResponseWriter, err error) {
	if writeErr := apphttp.WriteError(w, err); writeErr != nil {
		h.cfg.Log.Error("Failed to write error response", "error", writeErr)
	}
}

func actorFromRequest(r *http.Request) (model.Actor, error) {
	clientID := r.Header.Get(HeaderClientID)
	if clientID == "" {
		return model.Actor{}, apperrors.InvalidInput(HeaderClientID + " header is required")
	}

	role := model.RoleClient
	if r.Header.Get(HeaderClientRole) == string(model.RoleOperator) {
		role = model.RoleOperator
	}

	return model.Actor{ClientID: clientID, Role: role}, nil
}

func parseInterval(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := booking.ParseDate(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.InvalidInput("start_date must be in YYYY-MM-DD format")
	}
	end, err := booking.ParseDate(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, apperrors.InvalidInput("end_date must be in YYYY-MM-DD format")
	}
	return start, end, nil
}
