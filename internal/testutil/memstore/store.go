// Package memstore in-memory реализация репозиториев для тестов usecase и сервисов
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	allocationRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/allocation"
	bookingRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/booking"
	holidayRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/holiday"
	seatRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/seat"
	squadRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/squad"
	userRepo "github.com/vinaywa/Seat-Booking-System/internal/infra/storage/user"
)

// Store общее состояние всех in-memory репозиториев
// Возвращает те же sentinel ошибки, что и postgres репозитории
type Store struct {
	mu sync.Mutex
	tx sync.Mutex

	seats       map[int64]*domain.Seat
	users       map[int64]*domain.User
	squads      map[int64]*domain.Squad
	holidays    map[int64]*domain.Holiday
	bookings    map[int64]*domain.Booking
	allocations map[int64]*domain.Allocation
	nextID      int64
}

func New() *Store {
	return &Store{
		seats:       map[int64]*domain.Seat{},
		users:       map[int64]*domain.User{},
		squads:      map[int64]*domain.Squad{},
		holidays:    map[int64]*domain.Holiday{},
		bookings:    map[int64]*domain.Booking{},
		allocations: map[int64]*domain.Allocation{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// AddSeats добавляет места с номерами from..to
func (s *Store) AddSeats(from, to int, class domain.SeatClass) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for n := from; n <= to; n++ {
		id := s.id()
		s.seats[id] = &domain.Seat{ID: id, Number: n, Class: class, IsActive: true}
	}
}

// AddUser добавляет пользователя и возвращает его
func (s *Store) AddUser(name string, batch domain.Batch, role domain.Role) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	u := &domain.User{ID: id, Name: name, Email: name + "@company.com", Batch: batch, Role: role}
	s.users[id] = u
	cp := *u
	return &cp
}

// AddHoliday добавляет праздник
func (s *Store) AddHoliday(date time.Time, reason string) *domain.Holiday {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	h := &domain.Holiday{ID: id, Date: date, Reason: reason}
	s.holidays[id] = h
	cp := *h
	return &cp
}

// AddSquad добавляет отряд
func (s *Store) AddSquad(name string, batch domain.Batch) *domain.Squad {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id()
	sq := &domain.Squad{ID: id, Name: name, Batch: batch}
	s.squads[id] = sq
	cp := *sq
	return &cp
}

// ActiveBookings снимок активных броней на дату
func (s *Store) ActiveBookings(date time.Time) []domain.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.Booking
	for _, b := range s.bookings {
		if b.Date.Equal(date) && b.IsActive() {
			out = append(out, *b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// AllBookings количество строк броней любого статуса
func (s *Store) AllBookings() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// SeatByNumber место по номеру
func (s *Store) SeatByNumber(n int) *domain.Seat {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, seat := range s.seats {
		if seat.Number == n {
			cp := *seat
			return &cp
		}
	}
	return nil
}

// TxManager сериализует транзакции целиком (эквивалент advisory lock на уровне теста)
type TxManager struct{ s *Store }

func (s *Store) TxManager() *TxManager { return &TxManager{s: s} }

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.s.tx.Lock()
	defer m.s.tx.Unlock()
	return fn(ctx)
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func (m *TxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// Bookings view

type Bookings struct{ s *Store }

func (s *Store) Bookings() *Bookings { return &Bookings{s: s} }

func (r *Bookings) LockDate(context.Context, time.Time) error { return nil }

func (r *Bookings) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, other := range s.bookings {
		if !other.IsActive() || !other.Date.Equal(b.Date) {
			continue
		}
		if other.SeatID == b.SeatID {
			return nil, bookingRepo.ErrSeatTaken
		}
		if other.UserID == b.UserID {
			return nil, bookingRepo.ErrUserAlreadyBooked
		}
	}
	b.ID = s.id()
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	s.bookings[b.ID] = &cp
	return b, nil
}

func (r *Bookings) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *Bookings) GetActiveByUserAndDate(_ context.Context, userID int64, date time.Time) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.UserID == userID && b.Date.Equal(date) && b.IsActive() {
			cp := *b
			return &cp, nil
		}
	}
	return nil, bookingRepo.ErrNoActiveBooking
}

func (r *Bookings) VacateByUserAndDate(_ context.Context, userID int64, date time.Time) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, b := range r.s.bookings {
		if b.UserID == userID && b.Date.Equal(date) && b.IsActive() {
			b.Status = domain.StatusVacated
			b.UpdatedAt = time.Now()
			cp := *b
			return &cp, nil
		}
	}
	return nil, bookingRepo.ErrNoActiveBooking
}

func (r *Bookings) VacateByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok || !b.IsActive() {
		return nil, bookingRepo.ErrNoActiveBooking
	}
	b.Status = domain.StatusVacated
	b.UpdatedAt = time.Now()
	cp := *b
	return &cp, nil
}

func (r *Bookings) CountActiveByDate(_ context.Context, date time.Time) (int, error) {
	return len(r.s.ActiveBookings(date)), nil
}

func (r *Bookings) ListActiveBetween(_ context.Context, from, to time.Time) ([]*domain.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Booking
	for _, b := range r.s.bookings {
		if b.IsActive() && !b.Date.Before(from) && !b.Date.After(to) {
			cp := *b
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Bookings) ListDetailsByDate(_ context.Context, date time.Time) ([]*domain.BookingDetails, error) {
	return r.details(func(b *domain.Booking) bool { return b.Date.Equal(date) }, func(a, b *domain.BookingDetails) bool {
		return a.SeatNumber < b.SeatNumber
	}), nil
}

func (r *Bookings) ListDetailsByUser(_ context.Context, userID int64) ([]*domain.BookingDetails, error) {
	return r.details(func(b *domain.Booking) bool { return b.UserID == userID }, func(a, b *domain.BookingDetails) bool {
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return a.ID > b.ID
	}), nil
}

func (r *Bookings) details(match func(*domain.Booking) bool, less func(a, b *domain.BookingDetails) bool) []*domain.BookingDetails {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.BookingDetails
	for _, b := range r.s.bookings {
		if !match(b) {
			continue
		}
		d := &domain.BookingDetails{Booking: *b}
		if seat, ok := r.s.seats[b.SeatID]; ok {
			d.SeatNumber = seat.Number
			d.SeatClass = seat.Class
		}
		if u, ok := r.s.users[b.UserID]; ok {
			d.UserName, d.UserEmail, d.UserBatch = u.Name, u.Email, u.Batch
		}
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Seats view

type Seats struct{ s *Store }

func (s *Store) Seats() *Seats { return &Seats{s: s} }

func (r *Seats) sorted(match func(*domain.Seat) bool) []*domain.Seat {
	var out []*domain.Seat
	for _, seat := range r.s.seats {
		if match(seat) {
			cp := *seat
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

func (r *Seats) isFree(seatID int64, date time.Time) bool {
	for _, b := range r.s.bookings {
		if b.SeatID == seatID && b.Date.Equal(date) && b.IsActive() {
			return false
		}
	}
	return true
}

func (r *Seats) List(context.Context) ([]*domain.Seat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(*domain.Seat) bool { return true }), nil
}

func (r *Seats) ListByIDs(_ context.Context, ids []int64) ([]*domain.Seat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	return r.sorted(func(seat *domain.Seat) bool { return want[seat.ID] }), nil
}

func (r *Seats) ListFree(_ context.Context, date time.Time) ([]*domain.Seat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.sorted(func(seat *domain.Seat) bool { return seat.IsActive && r.isFree(seat.ID, date) }), nil
}

func (r *Seats) FirstFree(ctx context.Context, date time.Time) (*domain.Seat, error) {
	free, _ := r.ListFree(ctx, date)
	if len(free) == 0 {
		return nil, seatRepo.ErrNoFreeSeat
	}
	return free[0], nil
}

func (r *Seats) Count(context.Context) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.seats), nil
}

func (r *Seats) SetActive(_ context.Context, id int64, active bool) (*domain.Seat, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	seat, ok := r.s.seats[id]
	if !ok {
		return nil, seatRepo.ErrSeatNotFound
	}
	seat.IsActive = active
	cp := *seat
	return &cp, nil
}

// Users view

type Users struct{ s *Store }

func (s *Store) Users() *Users { return &Users{s: s} }

func (r *Users) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *Users) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.users {
		if other.Email == u.Email {
			return nil, userRepo.ErrEmailTaken
		}
	}
	if u.SquadID != nil {
		if _, ok := r.s.squads[*u.SquadID]; !ok {
			return nil, userRepo.ErrSquadNotFound
		}
	}
	u.ID = r.s.id()
	cp := *u
	r.s.users[u.ID] = &cp
	return u, nil
}

func (r *Users) Update(_ context.Context, u *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.users[u.ID]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	if u.SquadID != nil {
		if _, ok := r.s.squads[*u.SquadID]; !ok {
			return nil, userRepo.ErrSquadNotFound
		}
	}
	existing.Batch, existing.Role, existing.SquadID = u.Batch, u.Role, u.SquadID
	cp := *existing
	return &cp, nil
}

func (r *Users) List(context.Context) ([]*domain.User, error) {
	return r.filter(func(*domain.User) bool { return true }), nil
}

func (r *Users) ListBySquadIDs(_ context.Context, ids []int64) ([]*domain.User, error) {
	want := map[int64]bool{}
	for _, id := range ids {
		want[id] = true
	}
	return r.filter(func(u *domain.User) bool { return u.SquadID != nil && want[*u.SquadID] }), nil
}

func (r *Users) filter(match func(*domain.User) bool) []*domain.User {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.User
	for _, u := range r.s.users {
		if match(u) {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Squads view

type Squads struct{ s *Store }

func (s *Store) Squads() *Squads { return &Squads{s: s} }

func (r *Squads) Create(_ context.Context, sq *domain.Squad) (*domain.Squad, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.squads {
		if other.Name == sq.Name {
			return nil, squadRepo.ErrNameTaken
		}
	}
	sq.ID = r.s.id()
	cp := *sq
	r.s.squads[sq.ID] = &cp
	return sq, nil
}

func (r *Squads) GetByID(_ context.Context, id int64) (*domain.Squad, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sq, ok := r.s.squads[id]
	if !ok {
		return nil, squadRepo.ErrSquadNotFound
	}
	cp := *sq
	return &cp, nil
}

func (r *Squads) List(context.Context) ([]*domain.Squad, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Squad
	for _, sq := range r.s.squads {
		cp := *sq
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Holidays view

type Holidays struct{ s *Store }

func (s *Store) Holidays() *Holidays { return &Holidays{s: s} }

func (r *Holidays) Create(_ context.Context, h *domain.Holiday) (*domain.Holiday, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, other := range r.s.holidays {
		if other.Date.Equal(h.Date) {
			return nil, holidayRepo.ErrHolidayExists
		}
	}
	h.ID = r.s.id()
	cp := *h
	r.s.holidays[h.ID] = &cp
	return h, nil
}

func (r *Holidays) GetByID(_ context.Context, id int64) (*domain.Holiday, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	h, ok := r.s.holidays[id]
	if !ok {
		return nil, holidayRepo.ErrHolidayNotFound
	}
	cp := *h
	return &cp, nil
}

func (r *Holidays) IsHoliday(_ context.Context, date time.Time) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, h := range r.s.holidays {
		if h.Date.Equal(date) {
			return true, nil
		}
	}
	return false, nil
}

func (r *Holidays) List(ctx context.Context) ([]*domain.Holiday, error) {
	return r.ListBetween(ctx, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
}

func (r *Holidays) ListBetween(_ context.Context, from, to time.Time) ([]*domain.Holiday, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Holiday
	for _, h := range r.s.holidays {
		if !h.Date.Before(from) && !h.Date.After(to) {
			cp := *h
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *Holidays) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.holidays[id]; !ok {
		return holidayRepo.ErrHolidayNotFound
	}
	delete(r.s.holidays, id)
	return nil
}

// Allocations view

type Allocations struct{ s *Store }

func (s *Store) Allocations() *Allocations { return &Allocations{s: s} }

func (r *Allocations) Upsert(_ context.Context, a *domain.Allocation) (*domain.Allocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.allocations {
		if existing.SquadID == a.SquadID && existing.Week == a.Week && existing.Year == a.Year {
			existing.SeatIDs = append([]int64(nil), a.SeatIDs...)
			existing.UpdatedAt = time.Now()
			a.ID = existing.ID
			return a, nil
		}
	}
	a.ID = r.s.id()
	a.UpdatedAt = time.Now()
	cp := *a
	cp.SeatIDs = append([]int64(nil), a.SeatIDs...)
	r.s.allocations[a.ID] = &cp
	return a, nil
}

func (r *Allocations) ListByWeek(_ context.Context, week, year int) ([]*domain.Allocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*domain.Allocation
	for _, a := range r.s.allocations {
		if a.Week == week && a.Year == year {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SquadID < out[j].SquadID })
	return out, nil
}

func (r *Allocations) GetBySquadAndWeek(_ context.Context, squadID int64, week, year int) (*domain.Allocation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.allocations {
		if a.SquadID == squadID && a.Week == week && a.Year == year {
			cp := *a
			return &cp, nil
		}
	}
	return nil, allocationRepo.ErrAllocationNotFound
}

// Count количество сохраненных распределений
func (r *Allocations) Count() int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return len(r.s.allocations)
}
