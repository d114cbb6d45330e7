package manage_squads

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/service/squads"
	"github.com/vinaywa/Seat-Booking-System/internal/service/squads/models"
	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
)

type stubService struct {
	date    time.Time
	squadID *int64
	err     error
}

func (s *stubService) Create(_ context.Context, _ int64, req *models.CreateSquadRequest) (*models.SquadResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SquadResponse{ID: 1, Name: req.Name, Batch: req.Batch}, nil
}

func (s *stubService) List(context.Context) (*models.SquadListResponse, error) {
	return &models.SquadListResponse{}, s.err
}

func (s *stubService) Get(_ context.Context, squadID int64) (*models.SquadResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.SquadResponse{ID: squadID, Name: "Alpha"}, nil
}

func (s *stubService) GetAllocations(_ context.Context, date time.Time, squadID *int64) (*models.WeekAllocationsResponse, error) {
	s.date, s.squadID = date, squadID
	if s.err != nil {
		return nil, s.err
	}
	return &models.WeekAllocationsResponse{Week: 3, Year: 2026}, nil
}

func TestCreate(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/squads", strings.NewReader(`{"name":"Alpha","batch":"A"}`))
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	NewHandler(&stubService{}, memstore.NopLogger{}).Create(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var body models.SquadResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Alpha", body.Name)
}

func TestCreate_Errors(t *testing.T) {
	for err, status := range map[error]int{
		squads.ErrAccessDenied: http.StatusForbidden,
		squads.ErrNameTaken:    http.StatusConflict,
		squads.ErrInvalidInput: http.StatusBadRequest,
	} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/squads", strings.NewReader(`{"name":"Alpha","batch":"A"}`))
		NewHandler(&stubService{err: err}, memstore.NopLogger{}).Create(rec, req)
		assert.Equal(t, status, rec.Code, err.Error())
	}
}

func TestGet_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/squads/5", nil), map[string]string{"squadId": "5"})
	NewHandler(&stubService{err: squads.ErrSquadNotFound}, memstore.NopLogger{}).Get(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAllocations_AllSquadsCurrentWeek(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	NewHandler(svc, memstore.NopLogger{}).Allocations(rec, httptest.NewRequest(http.MethodGet, "/api/v1/allocations", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.date.IsZero())
	assert.Nil(t, svc.squadID)
}

func TestAllocations_SingleSquad(t *testing.T) {
	svc := &stubService{}
	rec := httptest.NewRecorder()
	req := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/api/v1/allocations/squads/2?date=2026-01-14", nil),
		map[string]string{"squadId": "2"})
	NewHandler(svc, memstore.NopLogger{}).Allocations(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.squadID)
	assert.Equal(t, int64(2), *svc.squadID)
	assert.Equal(t, time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), svc.date)

	rec = httptest.NewRecorder()
	NewHandler(&stubService{err: squads.ErrAllocationNotFound}, memstore.NopLogger{}).Allocations(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
