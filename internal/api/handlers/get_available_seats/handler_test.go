package get_available_seats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
	getAvailableSeats "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_available_seats"
)

type stubUseCase struct{ err error }

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSeats.Request) (*getAvailableSeats.Response, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &getAvailableSeats.Response{
		Date:      req.Date,
		Total:     50,
		Available: 1,
		Seats:     []domain.Seat{{ID: 41, Number: 41, Class: domain.SeatFloater, IsActive: true}},
	}, nil
}

func do(uc GetAvailableSeatsUseCase, query string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, memstore.NopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/available"+query, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	rec := do(&stubUseCase{}, "?date=2026-01-12")
	require.Equal(t, http.StatusOK, rec.Code)

	var body AvailableSeatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-01-12", body.Date)
	assert.Equal(t, 50, body.Total)
	require.Len(t, body.Seats, 1)
	assert.Equal(t, "FLOATER", body.Seats[0].Class)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, do(&stubUseCase{}, "").Code)
	assert.Equal(t, http.StatusInternalServerError, do(&stubUseCase{err: errors.New("boom")}, "?date=2026-01-12").Code)
}
