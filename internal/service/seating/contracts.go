package seating

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	LockDate(ctx context.Context, date time.Time) error
	GetActiveByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// SeatRepository интерфейс репозитория мест
type SeatRepository interface {
	FirstFree(ctx context.Context, date time.Time) (*domain.Seat, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
