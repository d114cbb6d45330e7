package allocate_week

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
	allocateWeek "github.com/vinaywa/Seat-Booking-System/internal/usecase/allocate_week"
)

type stubUseCase struct {
	got *allocateWeek.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *allocateWeek.Request) (*allocateWeek.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &allocateWeek.Response{
		Week: 3, Year: 2026, SeatsPerSquad: 7,
		Allocations: []allocateWeek.SquadAllocation{{AllocationID: 1, SquadID: 1, SquadName: "Alpha", SeatNumbers: []int{1, 2}}},
	}, nil
}

func do(uc AllocateWeekUseCase, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/allocations/allocate", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), 1))
	rec := httptest.NewRecorder()
	NewHandler(uc, memstore.NopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{}
	rec := do(uc, `{"date":"2026-01-14"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), uc.got.CallerID)
	assert.Equal(t, time.Date(2026, 1, 14, 0, 0, 0, 0, time.UTC), uc.got.Date)

	var body AllocateWeekResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 7, body.SeatsPerSquad)
	assert.Equal(t, []int{}, body.Unassigned)
}

func TestHandle_EmptyBodyMeansCurrentWeek(t *testing.T) {
	uc := &stubUseCase{}
	require.Equal(t, http.StatusOK, do(uc, "").Code)
	assert.True(t, uc.got.Date.IsZero())
}

func TestHandle_ErrorMapping(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, do(&stubUseCase{err: allocateWeek.ErrForbidden}, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(&stubUseCase{err: allocateWeek.ErrNoSquads}, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(&stubUseCase{err: allocateWeek.ErrNoSeats}, "").Code)
	assert.Equal(t, http.StatusNotFound, do(&stubUseCase{err: allocateWeek.ErrUserNotFound}, "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(&stubUseCase{err: errors.New("boom")}, "").Code)
	assert.Equal(t, http.StatusBadRequest, do(&stubUseCase{}, `{"date":"soon"}`).Code)
}
