package manage_squads

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/service/squads"
	"github.com/vinaywa/Seat-Booking-System/internal/service/squads/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidSquadID      = "некорректный ID отряда"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound            = "отряд не найден"
	msgAllocationNotFound  = "распределение для отряда на эту неделю не найдено"
	msgNameTaken           = "отряд с таким названием уже существует"
	msgForbidden           = "создание отрядов доступно только администратору"
	msgInvalidSquadRequest = "требуются name и batch (A или B)"
)

type Handler struct {
	service SquadService
	logger  Logger
}

func NewHandler(service SquadService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/squads
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSquadRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /squads - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.Create(r.Context(), callerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, squads.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSquadRequest)
		case errors.Is(err, squads.ErrAccessDenied):
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, squads.ErrNameTaken):
			handlers.RespondConflict(w, msgNameTaken)
		default:
			h.logger.Error("POST /squads - Failed to create squad: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /squads - Squad created: id=%d, name=%s", result.ID, result.Name)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/squads
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /squads - Failed to list squads: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/squads/{squadId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	squadID, err := handlers.ParseID(mux.Vars(r)["squadId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSquadID)
		return
	}

	result, err := h.service.Get(r.Context(), squadID)
	if err != nil {
		if errors.Is(err, squads.ErrSquadNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /squads/{id} - Failed to get squad: squad_id=%d, error=%v", squadID, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Allocations GET /api/v1/allocations?date=YYYY-MM-DD
// и GET /api/v1/allocations/squads/{squadId}?date=YYYY-MM-DD
// Без date - текущая неделя
func (h *Handler) Allocations(w http.ResponseWriter, r *http.Request) {
	var date time.Time
	if raw := strings.TrimSpace(r.URL.Query().Get("date")); raw != "" {
		parsed, err := handlers.ParseDate(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	var squadID *int64
	if raw, ok := mux.Vars(r)["squadId"]; ok {
		id, err := handlers.ParseID(raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidSquadID)
			return
		}
		squadID = &id
	}

	result, err := h.service.GetAllocations(r.Context(), date, squadID)
	if err != nil {
		switch {
		case errors.Is(err, squads.ErrAllocationNotFound):
			handlers.RespondNotFound(w, msgAllocationNotFound)
		case errors.Is(err, squads.ErrSquadNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		default:
			h.logger.Error("GET /allocations - Failed to get allocations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
