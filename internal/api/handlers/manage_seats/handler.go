package manage_seats

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seats"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seats/models"
)

const (
	msgInvalidSeatID      = "некорректный ID места"
	msgInvalidRequestBody = "требуется поле isActive"
	msgNotFound           = "место не найдено"
	msgForbidden          = "управление местами доступно только администратору"
)

type Handler struct {
	service SeatService
	logger  Logger
}

func NewHandler(service SeatService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/seats
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /seats - Failed to list seats: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// SetActive PATCH /api/v1/admin/seats/{seatId}
// Неактивное место находится на обслуживании и не выдается
func (h *Handler) SetActive(w http.ResponseWriter, r *http.Request) {
	seatID, err := handlers.ParseID(mux.Vars(r)["seatId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSeatID)
		return
	}

	var req models.SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.IsActive == nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.SetActive(r.Context(), callerID, seatID, *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, seats.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/seats/{id} - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)
		case errors.Is(err, seats.ErrSeatNotFound):
			handlers.RespondNotFound(w, msgNotFound)
		case errors.Is(err, seats.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidSeatID)
		default:
			h.logger.Error("PATCH /admin/seats/{id} - Failed to update seat: seat_id=%d, error=%v", seatID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/seats/{id} - Seat #%d active=%t", result.Number, result.IsActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}
