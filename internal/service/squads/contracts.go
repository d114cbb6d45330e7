package squads

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// SquadRepository интерфейс репозитория отрядов
type SquadRepository interface {
	Create(ctx context.Context, squad *domain.Squad) (*domain.Squad, error)
	GetByID(ctx context.Context, id int64) (*domain.Squad, error)
	List(ctx context.Context) ([]*domain.Squad, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListBySquadIDs(ctx context.Context, squadIDs []int64) ([]*domain.User, error)
}

// AllocationRepository интерфейс репозитория распределений
type AllocationRepository interface {
	ListByWeek(ctx context.Context, week, year int) ([]*domain.Allocation, error)
	GetBySquadAndWeek(ctx context.Context, squadID int64, week, year int) (*domain.Allocation, error)
}

// SeatRepository интерфейс инвентаря мест
type SeatRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]*domain.Seat, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time { return time.Now() }
