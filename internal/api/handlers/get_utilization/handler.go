package get_utilization

import (
	"net/http"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	getUtilization "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_utilization"
)

const (
	msgInvalidDate = "параметр date обязателен в формате YYYY-MM-DD"
)

type Handler struct {
	useCase GetUtilizationUseCase
	logger  Logger
}

func NewHandler(useCase GetUtilizationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/utilization?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /bookings/utilization - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getUtilization.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /bookings/utilization - Failed to compute utilization: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
