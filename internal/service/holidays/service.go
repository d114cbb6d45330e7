package holidays

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	holidayRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/holiday"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
	"github.com/vinaywa/Seat-Booking-System/internal/service/holidays/models"
)

// Service администрирование реестра праздников
// Добавлять и удалять можно только будущие даты
type Service struct {
	holidayRepo  HolidayRepository
	userRepo     UserRepository
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса праздников
func NewService(holidayRepo HolidayRepository, userRepo UserRepository, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		holidayRepo:  holidayRepo,
		userRepo:     userRepo,
		location:     location,
		timeProvider: realTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create добавляет праздник на будущую дату
func (s *Service) Create(ctx context.Context, callerID int64, req *models.CreateHolidayRequest) (*models.HolidayResponse, error) {
	if req == nil || req.Date.IsZero() {
		return nil, ErrInvalidInput
	}
	req.Normalize()
	date := schedule.NormalizeDate(req.Date)
	s.logger.Info("Create: adding holiday %s by user=%d", date.Format(domain.DateFormat), callerID)

	if err := s.checkAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	if !s.isFuture(date) {
		s.logger.Warn("Create: holiday date %s is not in the future", date.Format(domain.DateFormat))
		return nil, ErrPastDate
	}

	created, err := s.holidayRepo.Create(ctx, &domain.Holiday{Date: date, Reason: req.Reason})
	if err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayExists) {
			s.logger.Warn("Create: holiday %s already exists", date.Format(domain.DateFormat))
			return nil, ErrHolidayExists
		}
		s.logger.Error("Create: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully added holiday id=%d", created.ID)
	resp := models.FromDomainHoliday(created)
	return &resp, nil
}

// List все праздники по возрастанию даты
func (s *Service) List(ctx context.Context) (*models.HolidayListResponse, error) {
	holidays, err := s.holidayRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainHolidayList(holidays), nil
}

// Delete удаляет будущий праздник; прошедшие праздники неизменяемы
func (s *Service) Delete(ctx context.Context, callerID, holidayID int64) error {
	s.logger.Info("Delete: removing holiday id=%d by user=%d", holidayID, callerID)

	if holidayID <= 0 {
		return ErrInvalidInput
	}
	if err := s.checkAdmin(ctx, callerID); err != nil {
		return err
	}

	holiday, err := s.holidayRepo.GetByID(ctx, holidayID)
	if err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			s.logger.Warn("Delete: holiday id=%d not found", holidayID)
			return ErrHolidayNotFound
		}
		s.logger.Error("Delete: repository error for holiday id=%d: %v", holidayID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	if !s.isFuture(schedule.NormalizeDate(holiday.Date)) {
		s.logger.Warn("Delete: holiday id=%d on %s is in the past", holidayID, holiday.Date.Format(domain.DateFormat))
		return ErrPastDate
	}

	if err := s.holidayRepo.Delete(ctx, holidayID); err != nil {
		if errors.Is(err, holidayRepo.ErrHolidayNotFound) {
			return ErrHolidayNotFound
		}
		s.logger.Error("Delete: repository error for holiday id=%d: %v", holidayID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully removed holiday id=%d", holidayID)
	return nil
}

// Вспомогательные методы

func (s *Service) isFuture(date time.Time) bool {
	today := schedule.NormalizeDate(s.timeProvider.Now().In(s.location))
	return date.After(today)
}

func (s *Service) checkAdmin(ctx context.Context, callerID int64) error {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("checkAdmin: caller id=%d not found", callerID)
			return ErrAccessDenied
		}
		s.logger.Error("checkAdmin: failed to get caller id=%d: %v", callerID, err)
		return fmt.Errorf("%w: checkAdmin - failed to get caller: %v", ErrInternal, err)
	}
	if !caller.IsAdmin() {
		s.logger.Warn("checkAdmin: user=%d is not admin", callerID)
		return ErrAccessDenied
	}
	return nil
}
