package block_seat

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
	"github.com/vinaywa/Seat-Booking-System/internal/service/ledgerevents"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seating"
)

// UseCase use case блокировки места на следующий рабочий день после часа отсечки
type UseCase struct {
	userRepo     UserRepository
	holidayRepo  HolidayRepository
	engine       SeatEngine
	txManager    TransactionManager
	events       LedgerEvents
	policy       Policy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	holidayRepo HolidayRepository,
	engine SeatEngine,
	txManager TransactionManager,
	events LedgerEvents,
	policy Policy,
	logger Logger,
) *UseCase {
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	if policy.HolidaySkipLimit <= 0 {
		policy.HolidaySkipLimit = domain.HolidaySkipLimit
	}
	return &UseCase{
		userRepo:     userRepo,
		holidayRepo:  holidayRepo,
		engine:       engine,
		txManager:    txManager,
		events:       events,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute блокирует место на следующий рабочий день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.UserID <= 0 {
		uc.logger.Warn("BlockSeat: invalid request: %+v", req)
		return nil, ErrInvalidInput
	}

	// 2. Час отсечки в часовом поясе офиса
	now := uc.timeProvider.Now().In(uc.policy.Location)
	uc.logger.Info("BlockSeat: user=%d, now=%s", req.UserID, now.Format(time.RFC3339))

	if !schedule.IsAfterCutoff(now, uc.policy.CutoffHour) {
		uc.logger.Warn("BlockSeat: too early, now=%s cutoff=%d:00", now.Format("15:04"), uc.policy.CutoffHour)
		return nil, uc.reject(ErrTooEarly, domain.CodeTooEarly)
	}

	// 3. Целевая дата: следующий рабочий день, пропуская праздники
	target, err := uc.nextBookableDay(ctx, schedule.NormalizeDate(now))
	if err != nil {
		return nil, err
	}

	// 4. Получаем пользователя
	user, err := uc.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BlockSeat: user id=%d not found", req.UserID)
			return nil, uc.reject(ErrUserNotFound, domain.CodeNotFound)
		}
		uc.logger.Error("BlockSeat: failed to get user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}
	if err := uc.checkCallerIsAdmin(ctx, req); err != nil {
		return nil, err
	}

	// 5. Резервируем место в транзакции
	var reservation *seating.Reservation
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		reservation, err = uc.engine.Reserve(txCtx, user, target, domain.StatusBlocked)
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
		uc.logger.Error("BlockSeat: failed to reserve seat for user=%d: %v", user.ID, err)
		return nil, fmt.Errorf("%w: failed to reserve seat: %v", ErrInternal, err)
	}

	uc.events.Changed(ctx, ledgerevents.OpBlock, reservation.Booking, reservation.Seat.Number)

	uc.logger.Info("BlockSeat: booking id=%d blocked, user=%d, seat=#%d, date=%s",
		reservation.Booking.ID, user.ID, reservation.Seat.Number, target.Format(domain.DateFormat))

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

// nextBookableDay следующий рабочий день после today, не являющийся праздником
// Пропускает не более HolidaySkipLimit праздников подряд
func (uc *UseCase) nextBookableDay(ctx context.Context, today time.Time) (time.Time, error) {
	target := schedule.NextWorkingDay(today)

	for skipped := 0; ; skipped++ {
		isHoliday, err := uc.holidayRepo.IsHoliday(ctx, target)
		if err != nil {
			uc.logger.Error("BlockSeat: failed to check holiday %s: %v", target.Format(domain.DateFormat), err)
			return time.Time{}, fmt.Errorf("%w: failed to check holiday: %v", ErrInternal, err)
		}
		if !isHoliday {
			return target, nil
		}
		if skipped >= uc.policy.HolidaySkipLimit {
			uc.logger.Warn("BlockSeat: no bookable day after %d holidays from %s", skipped, today.Format(domain.DateFormat))
			return time.Time{}, uc.reject(ErrNoAvailableDay, domain.CodeNoAvailableDay)
		}
		target = schedule.NextWorkingDay(target)
	}
}

// checkCallerIsAdmin пропускает запрос за себя; за другого только администратору
func (uc *UseCase) checkCallerIsAdmin(ctx context.Context, req *Request) error {
	if req.CallerID == 0 || req.CallerID == req.UserID {
		return nil
	}

	caller, err := uc.userRepo.GetByID(ctx, req.CallerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("BlockSeat: caller id=%d not found", req.CallerID)
			return uc.reject(ErrForbidden, domain.CodeForbidden)
		}
		uc.logger.Error("BlockSeat: failed to get caller id=%d: %v", req.CallerID, err)
		return fmt.Errorf("%w: failed to get caller: %v", ErrInternal, err)
	}

	if !caller.IsAdmin() {
		uc.logger.Warn("BlockSeat: user=%d is not allowed to act for user=%d", req.CallerID, req.UserID)
		return uc.reject(ErrForbidden, domain.CodeForbidden)
	}
	return nil
}

func (uc *UseCase) reject(err error, code string) error {
	uc.events.Rejected(ledgerevents.OpBlock, code)
	return err
}
