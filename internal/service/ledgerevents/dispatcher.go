package ledgerevents

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/integrations/eventbus"
)

// Operation labels
const (
	OpBook    = "book"
	OpBlock   = "block"
	OpVacate  = "vacate"
	OpRelease = "release"
)

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }

// Dispatcher побочные эффекты изменения ledger после commit:
// инвалидация кэша доступности, событие в брокер, счетчик результатов
// Ошибки только логируются и не влияют на результат операции
type Dispatcher struct {
	cache     AvailabilityCache
	publisher Publisher
	recorder  OutcomeRecorder
	clock     TimeProvider
	logger    Logger
}

func NewDispatcher(cache AvailabilityCache, publisher Publisher, recorder OutcomeRecorder, logger Logger) *Dispatcher {
	return &Dispatcher{
		cache:     cache,
		publisher: publisher,
		recorder:  recorder,
		clock:     realTimeProvider{},
		logger:    logger,
	}
}

// Changed вызывается после успешного commit операции над бронью
func (d *Dispatcher) Changed(ctx context.Context, operation string, booking *domain.Booking, seatNumber int) {
	d.recorder.RecordBooking(operation, domain.ResultOK)

	if err := d.cache.Invalidate(ctx, booking.Date); err != nil {
		d.logger.Warn("ledgerevents: invalidate availability date=%s: %v", booking.Date.Format(domain.DateFormat), err)
	}

	event := eventbus.NewSeatEvent(booking, seatNumber, d.clock.Now())
	if err := d.publisher.Publish(ctx, eventbus.RoutingKey(booking.Status), event); err != nil {
		d.logger.Warn("ledgerevents: publish booking id=%d: %v", booking.ID, err)
	}
}

// Rejected фиксирует отказ с кодом
func (d *Dispatcher) Rejected(operation, code string) {
	d.recorder.RecordBooking(operation, code)
}
