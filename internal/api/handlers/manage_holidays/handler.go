package manage_holidays

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/service/holidays"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHolidayID   = "некорректный ID праздника"
	msgNotFound           = "праздник не найден"
	msgExists             = "праздник на эту дату уже существует"
	msgPastDate           = "изменять можно только будущие праздники"
	msgForbidden          = "управление праздниками доступно только администратору"
)

type Handler struct {
	service HolidayService
	logger  Logger
}

func NewHandler(service HolidayService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/holidays
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/holidays - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.Create(r.Context(), callerID, serviceReq)
	if err != nil {
		h.respondServiceError(w, "POST /admin/holidays", err)
		return
	}

	h.logger.Info("POST /admin/holidays - Holiday created: id=%d, date=%s", result.ID, result.Date)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// List GET /api/v1/admin/holidays
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/holidays - Failed to list holidays: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/holidays/{holidayId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	holidayID, err := handlers.ParseID(mux.Vars(r)["holidayId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidHolidayID)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), callerID, holidayID); err != nil {
		h.respondServiceError(w, "DELETE /admin/holidays/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/holidays/{id} - Holiday deleted: id=%d", holidayID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, holidays.ErrAccessDenied):
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, holidays.ErrHolidayNotFound):
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, holidays.ErrHolidayExists):
		handlers.RespondConflict(w, msgExists)
	case errors.Is(err, holidays.ErrPastDate):
		handlers.RespondError(w, http.StatusBadRequest, domain.CodePastDate, msgPastDate)
	case errors.Is(err, holidays.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
