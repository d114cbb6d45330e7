package seats

import (
	"context"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// SeatRepository интерфейс инвентаря мест
type SeatRepository interface {
	List(ctx context.Context) ([]*domain.Seat, error)
	SetActive(ctx context.Context, id int64, active bool) (*domain.Seat, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// AvailabilityCache кэш снимков доступности
type AvailabilityCache interface {
	InvalidateAll(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
