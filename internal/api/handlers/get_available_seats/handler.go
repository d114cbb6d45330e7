package get_available_seats

import (
	"net/http"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	getAvailableSeats "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_available_seats"
)

const (
	msgInvalidDate = "параметр date обязателен в формате YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSeatsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSeatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/available?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/available - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSeats.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /bookings/available - Failed to get available seats: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /bookings/available - date=%s, available=%d/%d", dateStr, result.Available, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
