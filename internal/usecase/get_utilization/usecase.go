package get_utilization

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
)

// UseCase use case расчета загрузки офиса
type UseCase struct {
	seatRepo    SeatRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(seatRepo SeatRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		seatRepo:    seatRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute считает активные брони (BOOKED и BLOCKED) относительно всех мест
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.Date.IsZero() {
		uc.logger.Warn("GetUtilization: invalid request: %+v", req)
		return nil, ErrInvalidInput
	}
	date := schedule.NormalizeDate(req.Date)

	var total, booked int
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, err = uc.seatRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		booked, err = uc.bookingRepo.CountActiveByDate(gctx, date)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetUtilization: failed to count for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to count: %v", ErrInternal, err)
	}

	resp := &Response{
		Date:               date,
		TotalSeats:         total,
		TotalBooked:        booked,
		UtilizationPercent: formatPercent(booked, total),
	}
	uc.logger.Info("GetUtilization: date=%s, booked=%d/%d (%s)", date.Format(domain.DateFormat), booked, total, resp.UtilizationPercent)

	return resp, nil
}
