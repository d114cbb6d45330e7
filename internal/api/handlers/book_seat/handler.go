package book_seat

import (
	"errors"
	"net/http"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	bookSeat "github.com/vinaywa/Seat-Booking-System/internal/usecase/book_seat"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "требуются userId и date"
	msgUserNotFound       = "пользователь не найден"
	msgWeekend            = "бронирование на выходные недоступно"
	msgHoliday            = "в этот день офис закрыт (праздник)"
	msgNotBatchDay        = "этот день не является назначенным для вашего batch"
	msgAlreadyBooked      = "у вас уже есть место на эту дату"
	msgSeatsFull          = "все места на эту дату заняты"
	msgForbidden          = "бронировать место за другого может только администратор"
)

type Handler struct {
	useCase BookSeatUseCase
	logger  Logger
}

func NewHandler(useCase BookSeatUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookSeatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())
	useCaseReq, err := req.ToUseCaseRequest(callerID)
	if err != nil {
		h.logger.Warn("POST /bookings/book - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookSeat.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookSeat.ErrUserNotFound):
			h.logger.Warn("POST /bookings/book - User not found: user_id=%d", useCaseReq.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookSeat.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookSeat.ErrWeekend):
			handlers.RespondError(w, http.StatusBadRequest, domain.CodeWeekendBlocked, msgWeekend)

		case errors.Is(err, bookSeat.ErrHoliday):
			handlers.RespondError(w, http.StatusBadRequest, domain.CodeHolidayBlocked, msgHoliday)

		case errors.Is(err, bookSeat.ErrNotBatchDay):
			handlers.RespondError(w, http.StatusBadRequest, domain.CodeNotBatchDay, msgNotBatchDay)

		case errors.Is(err, bookSeat.ErrAlreadyBooked):
			handlers.RespondError(w, http.StatusConflict, domain.CodeAlreadyBooked, msgAlreadyBooked)

		case errors.Is(err, bookSeat.ErrSeatsFull):
			h.logger.Warn("POST /bookings/book - Seats full: date=%s", req.Date)
			handlers.RespondError(w, http.StatusConflict, domain.CodeSeatsFull, msgSeatsFull)

		default:
			h.logger.Error("POST /bookings/book - Failed to book seat: user_id=%d, date=%s, error=%v",
				useCaseReq.UserID, req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/book - Seat booked: booking_id=%d, user_id=%d, seat=#%d",
		result.BookingID, result.UserID, result.SeatNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
