package get_available_seats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/infra/cache/availability"
	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
)

var monday = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

type memCache struct {
	data   map[time.Time]*availability.Snapshot
	gens   map[time.Time]int64
	gets   int
	setErr error
}

func newMemCache() *memCache {
	return &memCache{
		data: map[time.Time]*availability.Snapshot{},
		gens: map[time.Time]int64{},
	}
}

func (c *memCache) Version(_ context.Context, date time.Time) (availability.Version, error) {
	return availability.Version{Date: c.gens[date]}, nil
}

func (c *memCache) Invalidate(_ context.Context, date time.Time) error {
	c.gens[date]++
	delete(c.data, date)
	return nil
}

func (c *memCache) Get(_ context.Context, date time.Time) (*availability.Snapshot, bool, error) {
	c.gets++
	s, ok := c.data[date]
	return s, ok, nil
}

func (c *memCache) Set(_ context.Context, date time.Time, v availability.Version, s *availability.Snapshot) (bool, error) {
	if c.setErr != nil {
		return false, c.setErr
	}
	if c.gens[date] != v.Date {
		return false, nil
	}
	c.data[date] = s
	return true, nil
}

// bookingDuringRead бронирует место сразу после чтения свободных мест,
// как параллельный запрос, закоммиченный до записи снимка в кэш
type bookingDuringRead struct {
	*memstore.Seats
	store  *memstore.Store
	cache  *memCache
	seatID int64
	userID int64
	done   bool
}

func (r *bookingDuringRead) ListFree(ctx context.Context, date time.Time) ([]*domain.Seat, error) {
	free, err := r.Seats.ListFree(ctx, date)
	if err != nil || r.done {
		return free, err
	}
	r.done = true
	if _, err := r.store.Bookings().Create(ctx, &domain.Booking{
		UserID: r.userID, SeatID: r.seatID, Date: date, Status: domain.StatusBooked,
	}); err != nil {
		return nil, err
	}
	return free, r.cache.Invalidate(ctx, date)
}

func TestExecute_ExcludesBookedAndInactiveSeats(t *testing.T) {
	store := memstore.New()
	store.AddSeats(1, 5, domain.SeatDesignated)
	user := store.AddUser("a", domain.BatchA, domain.RoleEmployee)

	_, err := store.Bookings().Create(context.Background(), &domain.Booking{
		UserID: user.ID, SeatID: store.SeatByNumber(1).ID, Date: monday, Status: domain.StatusBooked,
	})
	require.NoError(t, err)
	_, err = store.Seats().SetActive(context.Background(), store.SeatByNumber(3).ID, false)
	require.NoError(t, err)

	uc := NewUseCase(store.Seats(), availability.Noop{}, memstore.NopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 3, resp.Available)
	numbers := make([]int, 0, len(resp.Seats))
	for _, s := range resp.Seats {
		numbers = append(numbers, s.Number)
	}
	assert.Equal(t, []int{2, 4, 5}, numbers)
}

func TestExecute_ServesFromCache(t *testing.T) {
	store := memstore.New()
	store.AddSeats(1, 2, domain.SeatFloater)
	cache := newMemCache()
	uc := NewUseCase(store.Seats(), cache, memstore.NopLogger{})

	first, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	require.Contains(t, cache.data, monday)

	// a cached snapshot wins over the store until invalidated
	store.AddSeats(3, 4, domain.SeatFloater)
	second, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 2, cache.gets)
}

func TestExecute_BookingBetweenReadAndCacheWriteIsNotCached(t *testing.T) {
	store := memstore.New()
	store.AddSeats(1, 2, domain.SeatDesignated)
	user := store.AddUser("a", domain.BatchA, domain.RoleEmployee)
	cache := newMemCache()
	repo := &bookingDuringRead{
		Seats:  store.Seats(),
		store:  store,
		cache:  cache,
		seatID: store.SeatByNumber(1).ID,
		userID: user.ID,
	}
	uc := NewUseCase(repo, cache, memstore.NopLogger{})

	first, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Equal(t, 2, first.Available)
	assert.NotContains(t, cache.data, monday)

	second, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	require.Equal(t, 1, second.Available)
	assert.Equal(t, 2, second.Seats[0].Number)
	assert.Contains(t, cache.data, monday)
}

func TestExecute_CacheWriteFailureIsIgnored(t *testing.T) {
	store := memstore.New()
	store.AddSeats(1, 2, domain.SeatFloater)
	cache := newMemCache()
	cache.setErr = errors.New("redis down")
	uc := NewUseCase(store.Seats(), cache, memstore.NopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Available)
}

func TestExecute_NoSeats(t *testing.T) {
	uc := NewUseCase(memstore.New().Seats(), availability.Noop{}, memstore.NopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Zero(t, resp.Total)
	assert.Empty(t, resp.Seats)

	_, err = uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
