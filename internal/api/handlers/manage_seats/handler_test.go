package manage_seats

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

	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seats"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seats/models"
	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
)

type stubService struct {
	seatID int64
	active *bool
	err    error
}

func (s *stubService) List(context.Context) (*models.SeatListResponse, error) {
	return &models.SeatListResponse{Total: 50, Active: 49, Designated: 40, Floater: 10}, s.err
}

func (s *stubService) SetActive(_ context.Context, _, seatID int64, active bool) (*models.SeatResponse, error) {
	s.seatID, s.active = seatID, &active
	if s.err != nil {
		return nil, s.err
	}
	return &models.SeatResponse{ID: seatID, Number: int(seatID), Class: "FLOATER", IsActive: active}, nil
}

func patch(svc SeatService, id, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/seats/"+id, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"seatId": id})
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	rec := httptest.NewRecorder()
	NewHandler(svc, memstore.NopLogger{}).SetActive(rec, req)
	return rec
}

func TestSetActive(t *testing.T) {
	svc := &stubService{}
	rec := patch(svc, "45", `{"isActive":false}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(45), svc.seatID)
	require.NotNil(t, svc.active)
	assert.False(t, *svc.active)
}

func TestSetActive_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, patch(&stubService{}, "45", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, patch(&stubService{}, "x", `{"isActive":true}`).Code)
	assert.Equal(t, http.StatusForbidden, patch(&stubService{err: seats.ErrAccessDenied}, "45", `{"isActive":true}`).Code)
	assert.Equal(t, http.StatusNotFound, patch(&stubService{err: seats.ErrSeatNotFound}, "99", `{"isActive":true}`).Code)
}

func TestList(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(&stubService{}, memstore.NopLogger{}).List(rec, httptest.NewRequest(http.MethodGet, "/api/v1/seats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.SeatListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 49, body.Active)
}
