package users

import (
	"context"
	"errors"
	"fmt"

	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/service/users/models"
)

// Service справочник сотрудников
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса пользователей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Create регистрирует сотрудника (только администратор)
func (s *Service) Create(ctx context.Context, callerID int64, req *models.CreateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Create: registering %s by user=%d", req.Email, callerID)

	user, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.checkAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, s.mapWriteError("Create", err)
	}

	s.logger.Info("Create: successfully registered user id=%d batch=%s", created.ID, created.Batch)
	resp := models.FromDomainUser(created)
	return &resp, nil
}

// Get пользователь по ID
func (s *Service) Get(ctx context.Context, userID int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Get: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Get: repository error for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	resp := models.FromDomainUser(user)
	return &resp, nil
}

// List все пользователи (только администратор)
func (s *Service) List(ctx context.Context, callerID int64) (*models.UserListResponse, error) {
	if err := s.checkAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.UserListResponse{Users: make([]models.UserResponse, 0, len(users)), Total: len(users)}
	for _, u := range users {
		resp.Users = append(resp.Users, models.FromDomainUser(u))
	}
	return resp, nil
}

// Update меняет batch, роль или отряд пользователя (только администратор)
// Новый batch действует для будущих проверок; существующие брони не пересматриваются
func (s *Service) Update(ctx context.Context, callerID, userID int64, req *models.UpdateUserRequest) (*models.UserResponse, error) {
	s.logger.Info("Update: updating user id=%d by user=%d", userID, callerID)

	if err := s.checkAdmin(ctx, callerID); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("Update: repository error for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := req.Apply(user); err != nil {
		s.logger.Warn("Update: invalid request for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	updated, err := s.userRepo.Update(ctx, user)
	if err != nil {
		return nil, s.mapWriteError("Update", err)
	}

	s.logger.Info("Update: successfully updated user id=%d batch=%s role=%s", updated.ID, updated.Batch, updated.Role)
	resp := models.FromDomainUser(updated)
	return &resp, nil
}

// Вспомогательные методы

func (s *Service) checkAdmin(ctx context.Context, callerID int64) error {
	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
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

func (s *Service) mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, userRepo.ErrEmailTaken):
		return ErrEmailTaken
	case errors.Is(err, userRepo.ErrSquadNotFound):
		return ErrSquadNotFound
	case errors.Is(err, userRepo.ErrUserNotFound):
		return ErrUserNotFound
	}
	s.logger.Error("%s: repository error: %v", op, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}
