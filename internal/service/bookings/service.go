package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	bookingRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/booking"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
	"github.com/vinaywa/Seat-Booking-System/internal/service/bookings/models"
	"github.com/vinaywa/Seat-Booking-System/internal/service/ledgerevents"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	userRepo    UserRepository
	events      LedgerEvents
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	userRepo UserRepository,
	events LedgerEvents,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		events:      events,
		logger:      logger,
	}
}

// Release освобождает бронь по ID (мягко, статус VACATED)
// Освободить может владелец брони или администратор
func (s *Service) Release(ctx context.Context, bookingID, callerID int64) (*models.ReleaseResponse, error) {
	s.logger.Info("Release: releasing booking id=%d by user=%d", bookingID, callerID)

	if bookingID <= 0 || callerID <= 0 {
		return nil, ErrInvalidInput
	}

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Release: booking id=%d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Release: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkOwnerOrAdmin(ctx, booking, callerID); err != nil {
		if errors.Is(err, ErrAccessDenied) {
			s.events.Rejected(ledgerevents.OpRelease, domain.CodeForbidden)
		}
		return nil, err
	}

	if !booking.IsActive() {
		s.logger.Warn("Release: booking id=%d is not active, status=%s", bookingID, booking.Status)
		s.events.Rejected(ledgerevents.OpRelease, domain.CodeNoActiveBooking)
		return nil, ErrNoActiveBooking
	}

	// Условный UPDATE: проиграв гонку, получаем ErrNoActiveBooking
	released, err := s.bookingRepo.VacateByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNoActiveBooking) {
			s.logger.Warn("Release: booking id=%d was vacated concurrently", bookingID)
			s.events.Rejected(ledgerevents.OpRelease, domain.CodeNoActiveBooking)
			return nil, ErrNoActiveBooking
		}
		s.logger.Error("Release: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}

	s.events.Changed(ctx, ledgerevents.OpRelease, released, 0)

	s.logger.Info("Release: successfully released booking id=%d", bookingID)
	return &models.ReleaseResponse{
		ID:     released.ID,
		SeatID: released.SeatID,
		Date:   released.Date.Format(domain.DateFormat),
		Status: string(released.Status),
	}, nil
}

// GetUserBookings история бронирований пользователя, новые первыми
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if userID <= 0 {
		return nil, ErrInvalidInput
	}

	bookings, err := s.bookingRepo.ListDetailsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// GetBookingsByDate все брони на дату (любого статуса) по номеру места
func (s *Service) GetBookingsByDate(ctx context.Context, date time.Time) (*models.BookingListResponse, error) {
	if date.IsZero() {
		return nil, ErrInvalidInput
	}
	date = schedule.NormalizeDate(date)
	s.logger.Info("GetBookingsByDate: fetching bookings for %s", date.Format(domain.DateFormat))

	bookings, err := s.bookingRepo.ListDetailsByDate(ctx, date)
	if err != nil {
		s.logger.Error("GetBookingsByDate: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetBookingsByDate - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Вспомогательные методы

// checkOwnerOrAdmin проверяет, что вызывающий владелец брони или администратор
func (s *Service) checkOwnerOrAdmin(ctx context.Context, booking *domain.Booking, callerID int64) error {
	if booking.UserID == callerID {
		return nil
	}

	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkOwnerOrAdmin: caller id=%d not found", callerID)
			return ErrAccessDenied
		}
		s.logger.Error("checkOwnerOrAdmin: failed to get caller id=%d: %v", callerID, err)
		return fmt.Errorf("%w: checkOwnerOrAdmin - failed to get caller: %v", ErrInternal, err)
	}

	if !caller.IsAdmin() {
		s.logger.Warn("checkOwnerOrAdmin: user=%d is neither owner nor admin of booking id=%d", callerID, booking.ID)
		return ErrAccessDenied
	}
	return nil
}
