package block_seat

import (
	"errors"
	"net/http"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	blockSeat "github.com/vinaywa/Seat-Booking-System/internal/usecase/block_seat"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "требуется userId"
	msgUserNotFound       = "пользователь не найден"
	msgTooEarly           = "блокировка доступна только после 15:00"
	msgNoAvailableDay     = "не найден рабочий день для блокировки"
	msgNotBatchDay        = "следующий рабочий день не является назначенным для вашего batch"
	msgAlreadyBooked      = "у вас уже есть место на следующий рабочий день"
	msgSeatsFull          = "все места на следующий рабочий день заняты"
	msgForbidden          = "блокировать место за другого может только администратор"
)

type Handler struct {
	useCase BlockSeatUseCase
	logger  Logger
}

func NewHandler(useCase BlockSeatUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/block
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockSeatRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /bookings/block - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())
	useCaseReq := req.ToUseCaseRequest(callerID)

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, blockSeat.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, blockSeat.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, blockSeat.ErrForbidden):
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blockSeat.ErrTooEarly):
			handlers.RespondError(w, http.StatusBadRequest, domain.CodeTooEarly, msgTooEarly)

		case errors.Is(err, blockSeat.ErrNoAvailableDay):
			h.logger.Warn("POST /bookings/block - No available day: user_id=%d", useCaseReq.UserID)
			handlers.RespondError(w, http.StatusBadRequest, domain.CodeNoAvailableDay, msgNoAvailableDay)

		case errors.Is(err, blockSeat.ErrNotBatchDay):
			handlers.RespondError(w, http.StatusBadRequest, domain.CodeNotBatchDay, msgNotBatchDay)

		case errors.Is(err, blockSeat.ErrAlreadyBooked):
			handlers.RespondError(w, http.StatusConflict, domain.CodeAlreadyBooked, msgAlreadyBooked)

		case errors.Is(err, blockSeat.ErrSeatsFull):
			handlers.RespondError(w, http.StatusConflict, domain.CodeSeatsFull, msgSeatsFull)

		default:
			h.logger.Error("POST /bookings/block - Failed to block seat: user_id=%d, error=%v", useCaseReq.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/block - Seat blocked: booking_id=%d, user_id=%d, date=%s",
		result.BookingID, result.UserID, result.Date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
