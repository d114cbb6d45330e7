package get_available_seats

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/infra/cache/availability"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
)

// UseCase use case получения свободных мест на дату
type UseCase struct {
	seatRepo SeatRepository
	cache    AvailabilityCache
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(seatRepo SeatRepository, cache AvailabilityCache, logger Logger) *UseCase {
	return &UseCase{
		seatRepo: seatRepo,
		cache:    cache,
		logger:   logger,
	}
}

// Execute возвращает свободные места на дату по возрастанию номера
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSeats: invalid request: %+v", req)
		return nil, ErrInvalidInput
	}
	date := schedule.NormalizeDate(req.Date)

	// 2. Фиксируем поколение до чтения из БД, затем пробуем кэш
	version, versionErr := uc.cache.Version(ctx, date)
	if versionErr != nil {
		uc.logger.Warn("GetAvailableSeats: cache version read failed for %s: %v", date.Format(domain.DateFormat), versionErr)
	}

	snapshot, ok, err := uc.cache.Get(ctx, date)
	if err != nil {
		uc.logger.Warn("GetAvailableSeats: cache read failed for %s: %v", date.Format(domain.DateFormat), err)
	}
	if ok {
		return toResponse(date, snapshot), nil
	}

	// 3. Читаем из БД параллельно
	var (
		total int
		free  []*domain.Seat
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = uc.seatRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		free, err = uc.seatRepo.ListFree(gctx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetAvailableSeats: failed to read seats for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to read seats: %v", ErrInternal, err)
	}

	snapshot = &availability.Snapshot{Total: total, Seats: make([]domain.Seat, 0, len(free))}
	for _, seat := range free {
		snapshot.Seats = append(snapshot.Seats, *seat)
	}

	// 4. Сохраняем снимок в кэш, если дату не меняли после чтения
	if versionErr == nil {
		stored, err := uc.cache.Set(ctx, date, version, snapshot)
		switch {
		case err != nil:
			uc.logger.Warn("GetAvailableSeats: cache write failed for %s: %v", date.Format(domain.DateFormat), err)
		case !stored:
			uc.logger.Info("GetAvailableSeats: snapshot for %s is stale, not cached", date.Format(domain.DateFormat))
		}
	}

	uc.logger.Info("GetAvailableSeats: date=%s, total=%d, available=%d", date.Format(domain.DateFormat), total, len(free))

	return toResponse(date, snapshot), nil
}

func toResponse(date time.Time, snapshot *availability.Snapshot) *Response {
	return &Response{
		Date:      date,
		Total:     snapshot.Total,
		Available: len(snapshot.Seats),
		Seats:     snapshot.Seats,
	}
}
