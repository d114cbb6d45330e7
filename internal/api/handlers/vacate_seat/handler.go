package vacate_seat

import (
	"errors"
	"net/http"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	vacateSeat "github.com/vinaywa/Seat-Booking-System/internal/usecase/vacate_seat"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "требуются userId и date"
	msgNoActiveBooking    = "нет активной брони на эту дату"
	msgForbidden          = "освободить чужое место может только администратор"
)

type Handler struct {
	useCase VacateSeatUseCase
	logger  Logger
}

func NewHandler(useCase VacateSeatUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/vacate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req VacateSeatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/vacate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())
	useCaseReq, err := req.ToUseCaseRequest(callerID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, vacateSeat.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, vacateSeat.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, vacateSeat.ErrNoActiveBooking):
			handlers.RespondError(w, http.StatusNotFound, domain.CodeNoActiveBooking, msgNoActiveBooking)

		default:
			h.logger.Error("POST /bookings/vacate - Failed to vacate: user_id=%d, date=%s, error=%v",
				useCaseReq.UserID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/vacate - Seat vacated: booking_id=%d, seat_id=%d", result.BookingID, result.SeatID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
