package ledgerevents

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/integrations/eventbus"
)

// AvailabilityCache кэш доступности мест по датам
type AvailabilityCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// Publisher публикатор событий брони
type Publisher interface {
	Publish(ctx context.Context, routingKey string, event eventbus.SeatEvent) error
}

// OutcomeRecorder счетчик результатов операций (pkg/metrics)
type OutcomeRecorder interface {
	RecordBooking(operation, result string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
