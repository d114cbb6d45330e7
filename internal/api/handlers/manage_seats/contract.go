package manage_seats

import (
	"context"

	"github.com/vinaywa/Seat-Booking-System/internal/service/seats/models"
)

type SeatService interface {
	List(ctx context.Context) (*models.SeatListResponse, error)
	SetActive(ctx context.Context, callerID, seatID int64, active bool) (*models.SeatResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
