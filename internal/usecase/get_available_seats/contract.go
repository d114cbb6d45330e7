package get_available_seats

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/infra/cache/availability"
)

// SeatRepository интерфейс инвентаря мест
type SeatRepository interface {
	Count(ctx context.Context) (int, error)
	ListFree(ctx context.Context, date time.Time) ([]*domain.Seat, error)
}

// AvailabilityCache кэш снимков доступности.
// Set не пишет снимок, если после Version дату инвалидировали
type AvailabilityCache interface {
	Version(ctx context.Context, date time.Time) (availability.Version, error)
	Get(ctx context.Context, date time.Time) (*availability.Snapshot, bool, error)
	Set(ctx context.Context, date time.Time, version availability.Version, snapshot *availability.Snapshot) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
