package get_bookings_by_date

import (
	"net/http"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
)

const (
	msgInvalidDate = "параметр date обязателен в формате YYYY-MM-DD"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := handlers.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetBookingsByDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to get bookings: date=%s, error=%v", r.URL.Query().Get("date"), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
