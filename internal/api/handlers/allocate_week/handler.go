package allocate_week

import (
	"errors"
	"net/http"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	allocateWeek "github.com/vinaywa/Seat-Booking-System/internal/usecase/allocate_week"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgForbidden          = "распределение мест доступно только администратору"
	msgUserNotFound       = "пользователь не найден"
	msgNoSquads           = "нет отрядов для распределения"
	msgNoSeats            = "нет мест для распределения"
)

type Handler struct {
	useCase AllocateWeekUseCase
	logger  Logger
}

func NewHandler(useCase AllocateWeekUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations/allocate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AllocateWeekRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("POST /allocations/allocate - Invalid request body: %v", err)
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
		case errors.Is(err, allocateWeek.ErrForbidden):
			h.logger.Warn("POST /allocations/allocate - Access denied: user_id=%d", callerID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, allocateWeek.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, allocateWeek.ErrNoSquads):
			handlers.RespondBadRequest(w, msgNoSquads)

		case errors.Is(err, allocateWeek.ErrNoSeats):
			handlers.RespondBadRequest(w, msgNoSeats)

		case errors.Is(err, allocateWeek.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /allocations/allocate - Failed to allocate: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /allocations/allocate - Week %d/%d allocated: squads=%d, seats_per_squad=%d",
		result.Week, result.Year, len(result.Allocations), result.SeatsPerSquad)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
