package holidays

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// HolidayRepository интерфейс реестра праздников
type HolidayRepository interface {
	Create(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error)
	GetByID(ctx context.Context, id int64) (*domain.Holiday, error)
	List(ctx context.Context) ([]*domain.Holiday, error)
	Delete(ctx context.Context, id int64) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
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
