package book_seat

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seating"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// HolidayRepository интерфейс реестра праздников
type HolidayRepository interface {
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

// SeatEngine шаг резервирования места
type SeatEngine interface {
	Reserve(ctx context.Context, user *domain.User, date time.Time, status domain.BookingStatus) (*seating.Reservation, error)
}

// LedgerEvents уведомления об изменении ledger
type LedgerEvents interface {
	Changed(ctx context.Context, operation string, booking *domain.Booking, seatNumber int)
	Rejected(operation, code string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
