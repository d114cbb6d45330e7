package squads

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	allocationRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/allocation"
	squadRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/squad"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
	"github.com/vinaywa/Seat-Booking-System/internal/service/squads/models"
)

// Service отряды и их недельные распределения мест
type Service struct {
	squadRepo      SquadRepository
	userRepo       UserRepository
	allocationRepo AllocationRepository
	seatRepo       SeatRepository
	location       *time.Location
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр сервиса отрядов
func NewService(
	squadRepo SquadRepository,
	userRepo UserRepository,
	allocationRepo AllocationRepository,
	seatRepo SeatRepository,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		squadRepo:      squadRepo,
		userRepo:       userRepo,
		allocationRepo: allocationRepo,
		seatRepo:       seatRepo,
		location:       location,
		timeProvider:   realTimeProvider{},
		logger:         logger,
	}
}

// WithTimeProvider подменяет источник времени
func (s *Service) WithTimeProvider(tp TimeProvider) *Service {
	s.timeProvider = tp
	return s
}

// Create создает отряд (только администратор)
func (s *Service) Create(ctx context.Context, callerID int64, req *models.CreateSquadRequest) (*models.SquadResponse, error) {
	s.logger.Info("Create: creating squad %q by user=%d", req.Name, callerID)

	squad, err := req.ToDomain()
	if err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	caller, err := s.userRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrAccessDenied
		}
		s.logger.Error("Create: failed to get caller id=%d: %v", callerID, err)
		return nil, fmt.Errorf("%w: Create - failed to get caller: %v", ErrInternal, err)
	}
	if !caller.IsAdmin() {
		s.logger.Warn("Create: user=%d is not admin", callerID)
		return nil, ErrAccessDenied
	}

	created, err := s.squadRepo.Create(ctx, squad)
	if err != nil {
		if errors.Is(err, squadRepo.ErrNameTaken) {
			s.logger.Warn("Create: squad name %q already exists", squad.Name)
			return nil, ErrNameTaken
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created squad id=%d", created.ID)
	resp := models.FromDomainSquad(created, nil)
	return &resp, nil
}

// List отряды с участниками
func (s *Service) List(ctx context.Context) (*models.SquadListResponse, error) {
	squads, err := s.squadRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	ids := make([]int64, 0, len(squads))
	for _, sq := range squads {
		ids = append(ids, sq.ID)
	}
	members, err := s.userRepo.ListBySquadIDs(ctx, ids)
	if err != nil {
		s.logger.Error("List: failed to list members: %v", err)
		return nil, fmt.Errorf("%w: List - failed to list members: %v", ErrInternal, err)
	}
	bySquad := groupBySquad(members)

	resp := &models.SquadListResponse{
		Squads: make([]models.SquadResponse, 0, len(squads)),
		Total:  len(squads),
	}
	for _, sq := range squads {
		resp.Squads = append(resp.Squads, models.FromDomainSquad(sq, bySquad[sq.ID]))
	}
	return resp, nil
}

// Get отряд с участниками
func (s *Service) Get(ctx context.Context, squadID int64) (*models.SquadResponse, error) {
	squad, err := s.squadRepo.GetByID(ctx, squadID)
	if err != nil {
		if errors.Is(err, squadRepo.ErrSquadNotFound) {
			s.logger.Warn("Get: squad id=%d not found", squadID)
			return nil, ErrSquadNotFound
		}
		s.logger.Error("Get: repository error for squad id=%d: %v", squadID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	members, err := s.userRepo.ListBySquadIDs(ctx, []int64{squadID})
	if err != nil {
		s.logger.Error("Get: failed to list members of squad id=%d: %v", squadID, err)
		return nil, fmt.Errorf("%w: Get - failed to list members: %v", ErrInternal, err)
	}

	resp := models.FromDomainSquad(squad, members)
	return &resp, nil
}

// GetAllocations распределения на неделю, содержащую date (пустая дата - текущая неделя)
// При заданном squadID возвращает только его распределение или ErrAllocationNotFound
func (s *Service) GetAllocations(ctx context.Context, date time.Time, squadID *int64) (*models.WeekAllocationsResponse, error) {
	if date.IsZero() {
		date = s.timeProvider.Now().In(s.location)
	}
	year, week := schedule.ISOWeekYear(schedule.NormalizeDate(date))
	s.logger.Info("GetAllocations: week %d/%d, squad=%v", week, year, squadID)

	allocations, err := s.loadAllocations(ctx, week, year, squadID)
	if err != nil {
		return nil, err
	}

	var seatIDs []int64
	for _, a := range allocations {
		seatIDs = append(seatIDs, a.SeatIDs...)
	}

	var (
		squads []*domain.Squad
		seats  []*domain.Seat
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		squads, err = s.squadRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		seats, err = s.seatRepo.ListByIDs(gctx, seatIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("GetAllocations: failed to resolve squads and seats: %v", err)
		return nil, fmt.Errorf("%w: GetAllocations - repository error: %v", ErrInternal, err)
	}

	squadByID := make(map[int64]*domain.Squad, len(squads))
	for _, sq := range squads {
		squadByID[sq.ID] = sq
	}
	seatByID := make(map[int64]*domain.Seat, len(seats))
	for _, seat := range seats {
		seatByID[seat.ID] = seat
	}

	resp := &models.WeekAllocationsResponse{
		Week:        week,
		Year:        year,
		Allocations: make([]models.AllocationResponse, 0, len(allocations)),
	}
	for _, a := range allocations {
		item := models.AllocationResponse{SquadID: a.SquadID, Seats: make([]models.AllocatedSeat, 0, len(a.SeatIDs))}
		if sq, ok := squadByID[a.SquadID]; ok {
			item.SquadName = sq.Name
			item.Batch = string(sq.Batch)
		}
		for _, id := range a.SeatIDs {
			if seat, ok := seatByID[id]; ok {
				item.Seats = append(item.Seats, models.AllocatedSeat{ID: seat.ID, Number: seat.Number, Class: string(seat.Class)})
			}
		}
		resp.Allocations = append(resp.Allocations, item)
	}
	return resp, nil
}

func (s *Service) loadAllocations(ctx context.Context, week, year int, squadID *int64) ([]*domain.Allocation, error) {
	if squadID == nil {
		allocations, err := s.allocationRepo.ListByWeek(ctx, week, year)
		if err != nil {
			s.logger.Error("GetAllocations: repository error for week %d/%d: %v", week, year, err)
			return nil, fmt.Errorf("%w: GetAllocations - repository error: %v", ErrInternal, err)
		}
		return allocations, nil
	}

	allocation, err := s.allocationRepo.GetBySquadAndWeek(ctx, *squadID, week, year)
	if err != nil {
		if errors.Is(err, allocationRepo.ErrAllocationNotFound) {
			s.logger.Warn("GetAllocations: no allocation for squad id=%d in week %d/%d", *squadID, week, year)
			return nil, ErrAllocationNotFound
		}
		s.logger.Error("GetAllocations: repository error for squad id=%d: %v", *squadID, err)
		return nil, fmt.Errorf("%w: GetAllocations - repository error: %v", ErrInternal, err)
	}
	return []*domain.Allocation{allocation}, nil
}

func groupBySquad(users []*domain.User) map[int64][]*domain.User {
	out := make(map[int64][]*domain.User)
	for _, u := range users {
		if u.SquadID != nil {
			out[*u.SquadID] = append(out[*u.SquadID], u)
		}
	}
	return out
}
