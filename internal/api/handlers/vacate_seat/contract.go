package vacate_seat

import (
	"context"

	vacateSeat "github.com/vinaywa/Seat-Booking-System/internal/usecase/vacate_seat"
)

type VacateSeatUseCase interface {
	Execute(ctx context.Context, req *vacateSeat.Request) (*vacateSeat.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
