package get_seat_grid

import (
	"context"

	getSeatGrid "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_seat_grid"
)

type GetSeatGridUseCase interface {
	Execute(ctx context.Context, req *getSeatGrid.Request) (*getSeatGrid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
