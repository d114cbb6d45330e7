package allocate_week

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// SquadRepository интерфейс репозитория отрядов
type SquadRepository interface {
	List(ctx context.Context) ([]*domain.Squad, error)
}

// SeatRepository интерфейс инвентаря мест
type SeatRepository interface {
	List(ctx context.Context) ([]*domain.Seat, error)
}

// AllocationRepository интерфейс репозитория распределений
type AllocationRepository interface {
	Upsert(ctx context.Context, allocation *domain.Allocation) (*domain.Allocation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
