package seats

import (
	"context"
	"errors"
	"fmt"

	seatRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/seat"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seats/models"
)

// Service инвентарь мест
type Service struct {
	seatRepo SeatRepository
	userRepo UserRepository
	cache    AvailabilityCache
	logger   Logger
}

// NewService создает новый экземпляр сервиса мест
func NewService(seatRepo SeatRepository, userRepo UserRepository, cache AvailabilityCache, logger Logger) *Service {
	return &Service{
		seatRepo: seatRepo,
		userRepo: userRepo,
		cache:    cache,
		logger:   logger,
	}
}

// List все места по возрастанию номера
func (s *Service) List(ctx context.Context) (*models.SeatListResponse, error) {
	seats, err := s.seatRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSeatList(seats), nil
}

// SetActive включает место или переводит его на обслуживание
// Существующие брони не трогает: неактивное место просто не выдается новым броням
func (s *Service) SetActive(ctx context.Context, callerID, seatID int64, active bool) (*models.SeatResponse, error) {
	s.logger.Info("SetActive: seat id=%d active=%t by user=%d", seatID, active, callerID)

	if seatID <= 0 {
		return nil, ErrInvalidInput
	}

	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrAccessDenied
		}
		s.logger.Error("SetActive: failed to get caller id=%d: %v", callerID, err)
		return nil, fmt.Errorf("%w: SetActive - failed to get caller: %v", ErrInternal, err)
	}
	if !caller.IsAdmin() {
		s.logger.Warn("SetActive: user=%d is not admin", callerID)
		return nil, ErrAccessDenied
	}

	seat, err := s.seatRepo.SetActive(ctx, seatID, active)
	if err != nil {
		if errors.Is(err, seatRepo.ErrSeatNotFound) {
			s.logger.Warn("SetActive: seat id=%d not found", seatID)
			return nil, ErrSeatNotFound
		}
		s.logger.Error("SetActive: repository error for seat id=%d: %v", seatID, err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.InvalidateAll(ctx); err != nil {
		s.logger.Warn("SetActive: failed to invalidate availability cache: %v", err)
	}

	s.logger.Info("SetActive: seat #%d is now active=%t", seat.Number, seat.IsActive)
	resp := models.FromDomainSeat(seat)
	return &resp, nil
}
