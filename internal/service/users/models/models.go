package models

import (
	"errors"
	"net/mail"
	"strings"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

var (
	// ErrNameRequired возвращается при пустом имени
	ErrNameRequired = errors.New("name is required")

	// ErrInvalidEmail возвращается при некорректном email
	ErrInvalidEmail = errors.New("invalid email")
)

// Request модели

// CreateUserRequest запрос на регистрацию сотрудника
type CreateUserRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Batch   string `json:"batch"`
	Role    string `json:"role,omitempty"` // по умолчанию EMPLOYEE
	SquadID *int64 `json:"squadId,omitempty"`
}

// ToDomain проверяет запрос и конвертирует в domain.User
func (r *CreateUserRequest) ToDomain() (*domain.User, error) {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return nil, ErrNameRequired
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(r.Email))
	if err != nil {
		return nil, ErrInvalidEmail
	}
	batch, err := domain.ParseBatch(r.Batch)
	if err != nil {
		return nil, err
	}
	role := domain.RoleEmployee
	if r.Role != "" {
		if role, err = domain.ParseRole(r.Role); err != nil {
			return nil, err
		}
	}
	return &domain.User{
		Name:    name,
		Email:   strings.ToLower(addr.Address),
		Batch:   batch,
		Role:    role,
		SquadID: r.SquadID,
	}, nil
}

// UpdateUserRequest частичное обновление: batch, role, squad
type UpdateUserRequest struct {
	Batch      *string `json:"batch,omitempty"`
	Role       *string `json:"role,omitempty"`
	SquadID    *int64  `json:"squadId,omitempty"`
	ClearSquad bool    `json:"clearSquad,omitempty"`
}

// Apply применяет изменения к пользователю
func (r *UpdateUserRequest) Apply(u *domain.User) error {
	if r.Batch != nil {
		batch, err := domain.ParseBatch(*r.Batch)
		if err != nil {
			return err
		}
		u.Batch = batch
	}
	if r.Role != nil {
		role, err := domain.ParseRole(*r.Role)
		if err != nil {
			return err
		}
		u.Role = role
	}
	switch {
	case r.ClearSquad:
		u.SquadID = nil
	case r.SquadID != nil:
		u.SquadID = r.SquadID
	}
	return nil
}

// Response модели

// UserResponse пользователь
type UserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Batch   string `json:"batch"`
	Role    string `json:"role"`
	SquadID *int64 `json:"squadId,omitempty"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// FromDomainUser конвертирует domain.User в UserResponse
func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Batch:   string(u.Batch),
		Role:    string(u.Role),
		SquadID: u.SquadID,
	}
}
