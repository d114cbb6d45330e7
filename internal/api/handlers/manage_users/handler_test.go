package manage_users

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/service/users"
	"github.com/vinaywa/Seat-Booking-System/internal/service/users/models"
	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
)

type stubService struct {
	callerID int64
	update   *models.UpdateUserRequest
	err      error
}

func (s *stubService) Create(_ context.Context, callerID int64, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.callerID = callerID
	if s.err != nil {
		return nil, s.err
	}
	return &models.UserResponse{ID: 10, Name: req.Name, Email: req.Email, Batch: req.Batch, Role: "EMPLOYEE"}, nil
}

func (s *stubService) Get(_ context.Context, userID int64) (*models.UserResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.UserResponse{ID: userID}, nil
}

func (s *stubService) List(_ context.Context, callerID int64) (*models.UserListResponse, error) {
	s.callerID = callerID
	if s.err != nil {
		return nil, s.err
	}
	return &models.UserListResponse{Users: []models.UserResponse{{ID: 1}}, Total: 1}, nil
}

func (s *stubService) Update(_ context.Context, _, userID int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.update = req
	if s.err != nil {
		return nil, s.err
	}
	return &models.UserResponse{ID: userID}, nil
}

func asAdmin(r *http.Request) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), 1))
}

func TestCreate(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/v1/admin/users",
		strings.NewReader(`{"name":"Asha","email":"asha@example.com","batch":"A"}`)))
	NewHandler(svc, memstore.NopLogger{}).Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(1), svc.callerID)

	var body models.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "asha@example.com", body.Email)
}

func TestCreate_ErrorMapping(t *testing.T) {
	cases := map[error]string{
		users.ErrAccessDenied:  "FORBIDDEN",
		users.ErrEmailTaken:    "CONFLICT",
		users.ErrInvalidInput:  "VALIDATION_ERROR",
		users.ErrSquadNotFound: "NOT_FOUND",
	}
	for err, code := range cases {
		rec := httptest.NewRecorder()
		req := asAdmin(httptest.NewRequest(http.MethodPost, "/api/v1/admin/users", strings.NewReader(`{"name":"Asha"}`)))
		NewHandler(&stubService{err: err}, memstore.NopLogger{}).Create(rec, req)

		var body handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, code, body.Error)
	}
}

func TestUpdate(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	req := asAdmin(httptest.NewRequest(http.MethodPatch, "/api/v1/admin/users/3", strings.NewReader(`{"batch":"B"}`)))
	req = mux.SetURLVars(req, map[string]string{"userId": "3"})
	NewHandler(svc, memstore.NopLogger{}).Update(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.update.Batch)
	assert.Equal(t, "B", *svc.update.Batch)
}

func TestGetAndList(t *testing.T) {
	rec := httptest.NewRecorder()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/users/3", nil), map[string]string{"userId": "3"})
	NewHandler(&stubService{err: users.ErrUserNotFound}, memstore.NopLogger{}).Get(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	NewHandler(&stubService{}, memstore.NopLogger{}).List(rec, asAdmin(httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil)))
	assert.Equal(t, http.StatusOK, rec.Code)
}
