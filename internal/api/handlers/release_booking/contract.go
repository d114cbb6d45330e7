package release_booking

import (
	"context"

	"github.com/vinaywa/Seat-Booking-System/internal/service/bookings/models"
)

type BookingService interface {
	Release(ctx context.Context, bookingID, callerID int64) (*models.ReleaseResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
