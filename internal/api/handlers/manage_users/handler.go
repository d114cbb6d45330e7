package manage_users

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/service/users"
	"github.com/vinaywa/Seat-Booking-System/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUserID      = "некорректный ID пользователя"
	msgInvalidUser        = "некорректные данные пользователя"
	msgNotFound           = "пользователь не найден"
	msgSquadNotFound      = "отряд не найден"
	msgEmailTaken         = "пользователь с таким email уже существует"
	msgForbidden          = "управление пользователями доступно только администратору"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/users
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.Create(r.Context(), callerID, &req)
	if err != nil {
		h.respondServiceError(w, "POST /admin/users", err)
		return
	}

	h.logger.Info("POST /admin/users - User created: id=%d, batch=%s", result.ID, result.Batch)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Get GET /api/v1/users/{userId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseID(mux.Vars(r)["userId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.respondServiceError(w, "GET /users/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// List GET /api/v1/admin/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	callerID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.List(r.Context(), callerID)
	if err != nil {
		h.respondServiceError(w, "GET /admin/users", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Update PATCH /api/v1/admin/users/{userId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := handlers.ParseID(mux.Vars(r)["userId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	var req models.UpdateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	callerID, _ := middleware.GetUserID(r.Context())

	result, err := h.service.Update(r.Context(), callerID, userID, &req)
	if err != nil {
		h.respondServiceError(w, "PATCH /admin/users/{id}", err)
		return
	}

	h.logger.Info("PATCH /admin/users/{id} - User updated: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, users.ErrInvalidInput):
		handlers.RespondBadRequest(w, msgInvalidUser)
	case errors.Is(err, users.ErrAccessDenied):
		h.logger.Warn("%s - Access denied", route)
		handlers.RespondForbidden(w, msgForbidden)
	case errors.Is(err, users.ErrUserNotFound):
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, users.ErrSquadNotFound):
		handlers.RespondNotFound(w, msgSquadNotFound)
	case errors.Is(err, users.ErrEmailTaken):
		handlers.RespondConflict(w, msgEmailTaken)
	default:
		h.logger.Error("%s - Service error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
