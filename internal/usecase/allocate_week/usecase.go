package allocate_week

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
)

// UseCase use case распределения мест по отрядам на ISO неделю
type UseCase struct {
	userRepo       UserRepository
	squadRepo      SquadRepository
	seatRepo       SeatRepository
	allocationRepo AllocationRepository
	txManager      TransactionManager
	location       *time.Location
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	userRepo UserRepository,
	squadRepo SquadRepository,
	seatRepo SeatRepository,
	allocationRepo AllocationRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		userRepo:       userRepo,
		squadRepo:      squadRepo,
		seatRepo:       seatRepo,
		allocationRepo: allocationRepo,
		txManager:      txManager,
		location:       location,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute перезаписывает распределение мест на неделю (последняя запись выигрывает)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.CallerID <= 0 {
		uc.logger.Warn("AllocateWeek: invalid request: %+v", req)
		return nil, ErrInvalidInput
	}

	// 2. Только администратор
	caller, err := uc.userRepo.GetByID(ctx, req.CallerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			uc.logger.Warn("AllocateWeek: caller id=%d not found", req.CallerID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("AllocateWeek: failed to get caller id=%d: %v", req.CallerID, err)
		return nil, fmt.Errorf("%w: failed to get caller: %v", ErrInternal, err)
	}
	if !caller.IsAdmin() {
		uc.logger.Warn("AllocateWeek: caller id=%d is not admin", caller.ID)
		return nil, ErrForbidden
	}

	// 3. Неделя
	date := req.Date
	if date.IsZero() {
		date = uc.timeProvider.Now().In(uc.location)
	}
	year, week := schedule.ISOWeekYear(schedule.NormalizeDate(date))

	// 4. Отряды и места
	squads, err := uc.squadRepo.List(ctx)
	if err != nil {
		uc.logger.Error("AllocateWeek: failed to list squads: %v", err)
		return nil, fmt.Errorf("%w: failed to list squads: %v", ErrInternal, err)
	}
	if len(squads) == 0 {
		return nil, ErrNoSquads
	}

	seats, err := uc.seatRepo.List(ctx)
	if err != nil {
		uc.logger.Error("AllocateWeek: failed to list seats: %v", err)
		return nil, fmt.Errorf("%w: failed to list seats: %v", ErrInternal, err)
	}
	if len(seats) == 0 {
		return nil, ErrNoSeats
	}

	perSquad, groups, rest := partition(squads, seats)

	// 5. Сохраняем распределение в одной транзакции
	resp := &Response{
		Week:          week,
		Year:          year,
		SeatsPerSquad: perSquad,
		Unassigned:    seatNumbers(rest),
		Allocations:   make([]SquadAllocation, 0, len(squads)),
	}
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		for i, squad := range squads {
			saved, err := uc.allocationRepo.Upsert(txCtx, &domain.Allocation{
				SquadID: squad.ID,
				Week:    week,
				Year:    year,
				SeatIDs: seatIDs(groups[i]),
			})
			if err != nil {
				return fmt.Errorf("squad id=%d: %w", squad.ID, err)
			}
			resp.Allocations = append(resp.Allocations, SquadAllocation{
				AllocationID: saved.ID,
				SquadID:      squad.ID,
				SquadName:    squad.Name,
				SeatIDs:      saved.SeatIDs,
				SeatNumbers:  seatNumbers(groups[i]),
			})
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("AllocateWeek: failed to save allocations for week %d/%d: %v", week, year, err)
		return nil, fmt.Errorf("%w: failed to save allocations: %v", ErrInternal, err)
	}

	uc.logger.Info("AllocateWeek: week %d/%d, squads=%d, seats=%d, per squad=%d, unassigned=%d",
		week, year, len(squads), len(seats), perSquad, len(rest))

	return resp, nil
}

func seatIDs(seats []*domain.Seat) []int64 {
	ids := make([]int64, 0, len(seats))
	for _, s := range seats {
		ids = append(ids, s.ID)
	}
	return ids
}

func seatNumbers(seats []*domain.Seat) []int {
	numbers := make([]int, 0, len(seats))
	for _, s := range seats {
		numbers = append(numbers, s.Number)
	}
	return numbers
}
