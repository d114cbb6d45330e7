package get_seat_grid

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
)

// UseCase use case построения недельной сетки мест
type UseCase struct {
	userRepo    UserRepository
	seatRepo    SeatRepository
	bookingRepo BookingRepository
	holidayRepo HolidayRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	seatRepo SeatRepository,
	bookingRepo BookingRepository,
	holidayRepo HolidayRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		userRepo:    userRepo,
		seatRepo:    seatRepo,
		bookingRepo: bookingRepo,
		holidayRepo: holidayRepo,
		logger:      logger,
	}
}

// Execute возвращает состояние каждого места на каждый рабочий день недели, содержащей Date
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.ViewerID <= 0 || req.Date.IsZero() {
		uc.logger.Warn("GetSeatGrid: invalid request: %+v", req)
		return nil, ErrInvalidInput
	}

	// 2. Пользователь, для которого строится сетка
	viewer, err := uc.userRepo.GetByID(ctx, req.ViewerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("GetSeatGrid: user id=%d not found", req.ViewerID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("GetSeatGrid: failed to get user id=%d: %v", req.ViewerID, err)
		return nil, fmt.Errorf("%w: failed to get user: %v", ErrInternal, err)
	}

	dates := schedule.WeekDates(req.Date)
	from, to := dates[0], dates[len(dates)-1]

	// 3. Места, брони и праздники недели читаем параллельно
	var (
		seats    []*domain.Seat
		bookings []*domain.Booking
		holidays []*domain.Holiday
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		seats, err = uc.seatRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		bookings, err = uc.bookingRepo.ListActiveBetween(gctx, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		holidays, err = uc.holidayRepo.ListBetween(gctx, from, to)
		return err
	})
	if err := g.Wait(); err != nil {
		uc.logger.Error("GetSeatGrid: failed to read week %s..%s: %v",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to read week: %v", ErrInternal, err)
	}

	// 4. Индексы для построения ячеек
	bySeatDay := make(map[seatDay]*domain.Booking, len(bookings))
	for _, b := range bookings {
		bySeatDay[seatDay{seatID: b.SeatID, date: schedule.NormalizeDate(b.Date)}] = b
	}
	isHoliday := make(map[time.Time]bool, len(holidays))
	for _, h := range holidays {
		isHoliday[schedule.NormalizeDate(h.Date)] = true
	}

	// 5. Сетка
	year, week := schedule.ISOWeekYear(from)
	resp := &Response{
		Week:   week,
		Year:   year,
		Parity: schedule.Parity(from).String(),
		Batch:  string(viewer.Batch),
		Dates:  dates,
		Rows:   make([]Row, 0, len(seats)),
	}
	for _, d := range dates {
		if schedule.IsEligible(viewer.Batch, d) {
			resp.DesignatedDays = append(resp.DesignatedDays, d)
		}
	}
	for _, seat := range seats {
		row := Row{
			SeatID:     seat.ID,
			SeatNumber: seat.Number,
			SeatClass:  string(seat.Class),
			IsActive:   seat.IsActive,
			Cells:      make([]Cell, 0, len(dates)),
		}
		for _, d := range dates {
			row.Cells = append(row.Cells, cellState(viewer, seat, d, bySeatDay[seatDay{seatID: seat.ID, date: d}], isHoliday[d]))
		}
		resp.Rows = append(resp.Rows, row)
	}

	uc.logger.Info("GetSeatGrid: user=%d, week %d/%d, seats=%d, bookings=%d", viewer.ID, week, year, len(seats), len(bookings))

	return resp, nil
}
