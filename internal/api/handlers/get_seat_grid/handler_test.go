package get_seat_grid

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
	getSeatGrid "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_seat_grid"
)

type stubUseCase struct {
	got *getSeatGrid.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *getSeatGrid.Request) (*getSeatGrid.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	monday := time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	bookingID := int64(77)
	return &getSeatGrid.Response{
		Week: 3, Year: 2026, Parity: "WEEK_ONE", Batch: "A",
		Dates:          []time.Time{monday},
		DesignatedDays: []time.Time{monday},
		Rows: []getSeatGrid.Row{{
			SeatID: 1, SeatNumber: 1, SeatClass: "DESIGNATED", IsActive: true,
			Cells: []getSeatGrid.Cell{{Date: monday, State: "MINE", BookingID: &bookingID}},
		}},
	}, nil
}

func do(uc GetSeatGridUseCase, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/9/seat-grid"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"userId": "9"})
	rec := httptest.NewRecorder()
	NewHandler(uc, memstore.NopLogger{}).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	uc := &stubUseCase{}
	rec := do(uc, "?date=2026-01-14")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), uc.got.ViewerID)

	var body GridResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"2026-01-12"}, body.Dates)
	require.Len(t, body.Rows, 1)
	assert.Equal(t, "MINE", body.Rows[0].Cells[0].State)
	require.NotNil(t, body.Rows[0].Cells[0].BookingID)
	assert.Equal(t, int64(77), *body.Rows[0].Cells[0].BookingID)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, do(&stubUseCase{}, "").Code)
	assert.Equal(t, http.StatusNotFound, do(&stubUseCase{err: getSeatGrid.ErrUserNotFound}, "?date=2026-01-14").Code)
}
