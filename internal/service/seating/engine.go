package seating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	bookingRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/booking"
	seatRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/seat"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
)

// Reservation созданная бронь вместе с выданным местом
type Reservation struct {
	Booking *domain.Booking
	Seat    *domain.Seat
}

// Engine общий шаг резервирования места для book и block
type Engine struct {
	bookingRepo BookingRepository
	seatRepo    SeatRepository
	logger      Logger
}

func NewEngine(bookingRepo BookingRepository, seatRepo SeatRepository, logger Logger) *Engine {
	return &Engine{
		bookingRepo: bookingRepo,
		seatRepo:    seatRepo,
		logger:      logger,
	}
}

// Reserve выдает пользователю свободное место с наименьшим номером на дату
// Вызывается внутри транзакции: advisory lock на дату держится до commit
func (e *Engine) Reserve(ctx context.Context, user *domain.User, date time.Time, status domain.BookingStatus) (*Reservation, error) {
	// 1. Сериализуем резервирования на одну дату
	if err := e.bookingRepo.LockDate(ctx, date); err != nil {
		e.logger.Error("Reserve: failed to lock date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: lock date: %v", ErrInternal, err)
	}

	// 2. Проверяем ротацию batch
	if !schedule.IsEligible(user.Batch, date) {
		e.logger.Warn("Reserve: user=%d batch=%s not eligible on %s (%s)",
			user.ID, user.Batch, date.Format(domain.DateFormat), schedule.Parity(date))
		return nil, ErrNotBatchDay
	}

	// 3. Одна активная бронь на пользователя в день
	existing, err := e.bookingRepo.GetActiveByUserAndDate(ctx, user.ID, date)
	if err != nil && !errors.Is(err, bookingRepo.ErrNoActiveBooking) {
		e.logger.Error("Reserve: failed to check existing booking user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: check existing booking: %v", ErrInternal, err)
	}
	if existing != nil {
		e.logger.Warn("Reserve: user=%d already holds booking id=%d on %s", user.ID, existing.ID, date.Format(domain.DateFormat))
		return nil, ErrAlreadyBooked
	}

	// 4. Свободное активное место с наименьшим номером
	seat, err := e.seatRepo.FirstFree(ctx, date)
	if err != nil {
		if errors.Is(err, seatRepo.ErrNoFreeSeat) {
			e.logger.Warn("Reserve: no free seats on %s", date.Format(domain.DateFormat))
			return nil, ErrSeatsFull
		}
		e.logger.Error("Reserve: failed to find free seat on %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: find free seat: %v", ErrInternal, err)
	}

	// 5. Создаем бронь; уникальные индексы - последняя линия защиты
	booking, err := e.bookingRepo.Create(ctx, &domain.Booking{
		UserID: user.ID,
		SeatID: seat.ID,
		Date:   date,
		Status: status,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrUserAlreadyBooked):
			return nil, ErrAlreadyBooked
		case errors.Is(err, bookingRepo.ErrSeatTaken):
			return nil, ErrSeatsFull
		}
		e.logger.Error("Reserve: failed to create booking user=%d seat=%d: %v", user.ID, seat.ID, err)
		return nil, fmt.Errorf("%w: create booking: %v", ErrInternal, err)
	}

	e.logger.Info("Reserve: user=%d got seat=%d (#%d) on %s status=%s",
		user.ID, seat.ID, seat.Number, date.Format(domain.DateFormat), status)

	return &Reservation{Booking: booking, Seat: seat}, nil
}
