package allocate_week

import (
	"context"

	allocateWeek "github.com/vinaywa/Seat-Booking-System/internal/usecase/allocate_week"
)

type AllocateWeekUseCase interface {
	Execute(ctx context.Context, req *allocateWeek.Request) (*allocateWeek.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
