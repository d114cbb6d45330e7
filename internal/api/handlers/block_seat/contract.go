package block_seat

import (
	"context"

	blockSeat "github.com/vinaywa/Seat-Booking-System/internal/usecase/block_seat"
)

type BlockSeatUseCase interface {
	Execute(ctx context.Context, req *blockSeat.Request) (*blockSeat.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
