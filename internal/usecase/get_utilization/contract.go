package get_utilization

import (
	"context"
	"time"
)

// SeatRepository интерфейс инвентаря мест
type SeatRepository interface {
	Count(ctx context.Context) (int, error)
}

// BookingRepository интерфейс ledger броней
type BookingRepository interface {
	CountActiveByDate(ctx context.Context, date time.Time) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
