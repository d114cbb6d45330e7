package vacate_seat

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// BookingRepository интерфейс ledger броней
type BookingRepository interface {
	VacateByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.Booking, error)
}

// LedgerEvents уведомления об изменении ledger
type LedgerEvents interface {
	Changed(ctx context.Context, operation string, booking *domain.Booking, seatNumber int)
	Rejected(operation, code string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
