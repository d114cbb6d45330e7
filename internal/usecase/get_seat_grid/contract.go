package get_seat_grid

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SeatRepository интерфейс инвентаря мест
type SeatRepository interface {
	List(ctx context.Context) ([]*domain.Seat, error)
}

// BookingRepository интерфейс ledger броней
type BookingRepository interface {
	ListActiveBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}

// HolidayRepository интерфейс реестра праздников
type HolidayRepository interface {
	ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Holiday, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
