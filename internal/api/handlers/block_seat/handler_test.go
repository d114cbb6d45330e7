package block_seat

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

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/api/middleware"
	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
	blockSeat "github.com/vinaywa/Seat-Booking-System/internal/usecase/block_seat"
)

type stubUseCase struct {
	got  *blockSeat.Request
	resp *blockSeat.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *blockSeat.Request) (*blockSeat.Response, error) {
	s.got = req
	return s.resp, s.err
}

func do(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings/block", strings.NewReader(body))
	req = req.WithContext(middleware.WithUserID(req.Context(), 5))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_EmptyBodyBlocksForCaller(t *testing.T) {
	uc := &stubUseCase{resp: &blockSeat.Response{
		BookingID: 1, UserID: 5, SeatNumber: 42, SeatClass: "FLOATER",
		Date: time.Date(2026, 1, 13, 0, 0, 0, 0, time.UTC), Status: "BLOCKED",
	}}
	rec := do(NewHandler(uc, memstore.NopLogger{}), "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(5), uc.got.UserID)

	var body BlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "BLOCKED", body.Status)
	assert.Equal(t, "2026-01-13", body.Date)
}

func TestHandle_ExplicitUser(t *testing.T) {
	uc := &stubUseCase{resp: &blockSeat.Response{}}
	do(NewHandler(uc, memstore.NopLogger{}), `{"userId":12}`)
	assert.Equal(t, int64(12), uc.got.UserID)
	assert.Equal(t, int64(5), uc.got.CallerID)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{blockSeat.ErrTooEarly, http.StatusBadRequest, "TOO_EARLY"},
		{blockSeat.ErrNoAvailableDay, http.StatusBadRequest, "NO_AVAILABLE_DAY"},
		{blockSeat.ErrNotBatchDay, http.StatusBadRequest, "NOT_BATCH_DAY"},
		{blockSeat.ErrAlreadyBooked, http.StatusConflict, "ALREADY_BOOKED"},
		{blockSeat.ErrSeatsFull, http.StatusConflict, "SEATS_FULL"},
		{blockSeat.ErrUserNotFound, http.StatusNotFound, "NOT_FOUND"},
		{blockSeat.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		rec := do(NewHandler(&stubUseCase{err: tc.err}, memstore.NopLogger{}), "")
		assert.Equal(t, tc.status, rec.Code, tc.code)

		var body handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, tc.code, body.Error)
	}
}

func TestHandle_MalformedBody(t *testing.T) {
	rec := do(NewHandler(&stubUseCase{}, memstore.NopLogger{}), `{"userId":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
