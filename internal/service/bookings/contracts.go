package bookings

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// BookingRepository интерфейс ledger броней
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	VacateByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListDetailsByUser(ctx context.Context, userID int64) ([]*domain.BookingDetails, error)
	ListDetailsByDate(ctx context.Context, date time.Time) ([]*domain.BookingDetails, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
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
