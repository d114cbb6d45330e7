package vacate_seat

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	bookingRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/booking"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
	"github.com/vinaywa/Seat-Booking-System/internal/service/ledgerevents"
)

// UseCase use case освобождения места пользователем
type UseCase struct {
	userRepo    UserRepository
	bookingRepo BookingRepository
	events      LedgerEvents
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(userRepo UserRepository, bookingRepo BookingRepository, events LedgerEvents, logger Logger) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		events:      events,
		logger:      logger,
	}
}

// Execute переводит активную бронь пользователя на дату в VACATED
// Место сразу становится свободным, автоматического переназначения нет
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.UserID <= 0 || req.Date.IsZero() {
		uc.logger.Warn("VacateSeat: invalid request: %+v", req)
		return nil, ErrInvalidInput
	}

	date := schedule.NormalizeDate(req.Date)
	uc.logger.Info("VacateSeat: user=%d, date=%s", req.UserID, date.Format(domain.DateFormat))

	// 2. Чужую бронь освобождает только администратор
	if err := uc.checkOwnerOrAdmin(ctx, req); err != nil {
		return nil, err
	}

	// 3. Один условный UPDATE: BOOKED|BLOCKED -> VACATED
	booking, err := uc.bookingRepo.VacateByUserAndDate(ctx, req.UserID, date)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNoActiveBooking) {
			uc.logger.Warn("VacateSeat: no active booking for user=%d date=%s", req.UserID, date.Format(domain.DateFormat))
			uc.events.Rejected(ledgerevents.OpVacate, domain.CodeNoActiveBooking)
			return nil, ErrNoActiveBooking
		}
		uc.logger.Error("VacateSeat: failed to vacate booking for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to vacate booking: %v", ErrInternal, err)
	}

	uc.events.Changed(ctx, ledgerevents.OpVacate, booking, 0)

	uc.logger.Info("VacateSeat: booking id=%d vacated, seat id=%d is free", booking.ID, booking.SeatID)

	return &Response{
		BookingID: booking.ID,
		UserID:    booking.UserID,
		SeatID:    booking.SeatID,
		Date:      booking.Date,
		Status:    string(booking.Status),
	}, nil
}

// checkOwnerOrAdmin пропускает владельца и администратора
func (uc *UseCase) checkOwnerOrAdmin(ctx context.Context, req *Request) error {
	if req.CallerID == 0 || req.CallerID == req.UserID {
		return nil
	}

	caller, err := uc.userRepo.GetByID(ctx, req.CallerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("VacateSeat: caller id=%d not found", req.CallerID)
			uc.events.Rejected(ledgerevents.OpVacate, domain.CodeForbidden)
			return ErrForbidden
		}
		uc.logger.Error("VacateSeat: failed to get caller id=%d: %v", req.CallerID, err)
		return fmt.Errorf("%w: failed to get caller: %v", ErrInternal, err)
	}

	if !caller.IsAdmin() {
		uc.logger.Warn("VacateSeat: user=%d is not allowed to vacate seat of user=%d", req.CallerID, req.UserID)
		uc.events.Rejected(ledgerevents.OpVacate, domain.CodeForbidden)
		return ErrForbidden
	}
	return nil
}
