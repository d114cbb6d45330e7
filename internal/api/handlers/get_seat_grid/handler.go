package get_seat_grid

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	getSeatGrid "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_seat_grid"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
	msgInvalidDate   = "параметр date обязателен в формате YYYY-MM-DD"
	msgUserNotFound  = "пользователь не найден"
)

type Handler struct {
	useCase GetSeatGridUseCase
	logger  Logger
}

func NewHandler(useCase GetSeatGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/seat-grid?date=YYYY-MM-DD
// MINE и доступность ячеек считаются относительно userId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewerID, err := handlers.ParseID(mux.Vars(r)["userId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	date, err := handlers.ParseDate(dateStr)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSeatGrid.Request{ViewerID: viewerID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getSeatGrid.ErrUserNotFound):
			handlers.RespondNotFound(w, msgUserNotFound)
		case errors.Is(err, getSeatGrid.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)
		default:
			h.logger.Error("GET /users/{userId}/seat-grid - Failed to build grid: user_id=%d, date=%s, error=%v", viewerID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
