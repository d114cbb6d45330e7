package book_seat

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
	"github.com/vinaywa/Seat-Booking-System/internal/service/ledgerevents"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seating"
)

// UseCase use case бронирования места на выбранную дату
type UseCase struct {
	userRepo    UserRepository
	holidayRepo HolidayRepository
	engine      SeatEngine
	txManager   TransactionManager
	events      LedgerEvents
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	holidayRepo HolidayRepository,
	engine SeatEngine,
	txManager TransactionManager,
	events LedgerEvents,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		holidayRepo: holidayRepo,
		engine:      engine,
		txManager:   txManager,
		events:      events,
		logger:      logger,
	}
}

// Execute выполняет бронирование
// Проверки выполняются в порядке: пользователь, выходной, праздник, ротация, дубликат, места
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.UserID <= 0 || req.Date.IsZero() {
		uc.logger.Warn("BookSeat: invalid request: %+v", req)
		return nil, ErrInvalidInput
	}

	date := schedule.NormalizeDate(req.Date)
	uc.logger.Info("BookSeat: user=%d, date=%s", req.UserID, date.Format(domain.DateFormat))

	// 2. Получаем пользователя
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BookSeat: user id=%d not found", req.UserID)
			return nil, uc.reject(ErrUserNotFound, domain.CodeNotFound)
		}
		uc.logger.Error("BookSeat: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if err := uc.checkCallerIsAdmin(ctx, req); err != nil {
		return nil, err
	}

	// 3. Выходные
	if schedule.IsWeekend(date) {
		uc.logger.Warn("BookSeat: %s is a weekend", date.Format(domain.DateFormat))
		return nil, uc.reject(ErrWeekend, domain.CodeWeekendBlocked)
	}

	// 4. Праздники
	isHoliday, err := uc.holidayRepo.IsHoliday(ctx, date)
	if err != nil {
		uc.logger.Error("BookSeat: failed to check holiday %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
	}
	if isHoliday {
		uc.logger.Warn("BookSeat: %s is a holiday", date.Format(domain.DateFormat))
		return nil, uc.reject(ErrHoliday, domain.CodeHolidayBlocked)
	}

	// 5. Резервируем место в транзакции
	var reservation *seating.Reservation
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		reservation, err = uc.engine.Reserve(txCtx, user, date, domain.StatusBooked)
		return err
	})
	if err != nil {
		switch {
		case errors.Is(err, seating.ErrNotBatchDay):
			return nil, uc.reject(ErrNotBatchDay, domain.CodeNotBatchDay)
		case errors.Is(err, seating.ErrAlreadyBooked):
			return nil, uc.reject(ErrAlreadyBooked, domain.CodeAlreadyBooked)
		case errors.Is(err, seating.ErrSeatsFull):
			return nil, uc.reject(ErrSeatsFull, domain.CodeSeatsFull)
		}
		uc.logger.Error("BookSeat: failed to reserve seat for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: failed to reserve seat: %v", ErrInternal, err)
	}

	// 6. Побочные эффекты после commit
	uc.events.Changed(ctx, ledgerevents.OpBook, reservation.Booking, reservation.Seat.Number)

	uc.logger.Info("BookSeat: booking id=%d created, user=%d, seat=#%d, date=%s",
		reservation.Booking.ID, user.ID, reservation.Seat.Number, date.Format(domain.DateFormat))

	return &Response{
		BookingID:  reservation.Booking.ID,
		UserID:     user.ID,
		SeatID:     reservation.Seat.ID,
		SeatNumber: reservation.Seat.Number,
		SeatClass:  string(reservation.Seat.Class),
		Date:       reservation.Booking.Date,
		Status:     string(reservation.Booking.Status),
	}, nil
}

// checkCallerIsAdmin пропускает запрос за себя; за другого только администратору
func (uc *UseCase) checkCallerIsAdmin(ctx context.Context, req *Request) error {
	if req.CallerID == 0 || req.CallerID == req.UserID {
		return nil
	}

	caller, err := uc.userRepo.GetByID(ctx, req.CallerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BookSeat: caller id=%d not found", req.CallerID)
			return uc.reject(ErrForbidden, domain.CodeForbidden)
		}
		uc.logger.Error("BookSeat: failed to get caller id=%d: %v", req.CallerID, err)
		return fmt.Errorf("%w: failed to get caller: %v", ErrInternal, err)
	}

	if !caller.IsAdmin() {
		uc.logger.Warn("BookSeat: user=%d is not allowed to act for user=%d", req.CallerID, req.UserID)
		return uc.reject(ErrForbidden, domain.CodeForbidden)
	}
	return nil
}

func (uc *UseCase) reject(err error, code string) error {
	uc.events.Rejected(ledgerevents.OpBook, code)
	return err
}
