package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
)

var (
	monday  = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)
	tuesday = monday.AddDate(0, 0, 1)
)

type fixture struct {
	store  *memstore.Store
	events *memstore.Events
	svc    *Service
}

func newFixture() *fixture {
	store := memstore.New()
	store.AddSeats(1, 5, domain.SeatDesignated)
	events := &memstore.Events{}
	svc := NewService(store.Bookings(), store.Users(), events, memstore.NopLogger{})
	return &fixture{store: store, events: events, svc: svc}
}

func (f *fixture) book(t *testing.T, user *domain.User, seatNumber int, date time.Time) *domain.Booking {
	t.Helper()
	b, err := f.store.Bookings().Create(context.Background(), &domain.Booking{
		UserID: user.ID, SeatID: f.store.SeatByNumber(seatNumber).ID, Date: date, Status: domain.StatusBooked,
	})
	require.NoError(t, err)
	return b
}

func TestRelease_ByOwner(t *testing.T) {
	f := newFixture()
	owner := f.store.AddUser("owner", domain.BatchA, domain.RoleEmployee)
	b := f.book(t, owner, 1, monday)

	resp, err := f.svc.Release(context.Background(), b.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "VACATED", resp.Status)
	assert.Equal(t, "2026-01-12", resp.Date)
	assert.Empty(t, f.store.ActiveBookings(monday))
	assert.Equal(t, []string{"release:VACATED"}, f.events.ChangeLog)
}

func TestRelease_ByAdmin(t *testing.T) {
	f := newFixture()
	owner := f.store.AddUser("owner", domain.BatchA, domain.RoleEmployee)
	admin := f.store.AddUser("admin", domain.BatchB, domain.RoleAdmin)
	b := f.book(t, owner, 1, monday)

	_, err := f.svc.Release(context.Background(), b.ID, admin.ID)
	require.NoError(t, err)
}

func TestRelease_Forbidden(t *testing.T) {
	f := newFixture()
	owner := f.store.AddUser("owner", domain.BatchA, domain.RoleEmployee)
	stranger := f.store.AddUser("stranger", domain.BatchA, domain.RoleEmployee)
	b := f.book(t, owner, 1, monday)

	_, err := f.svc.Release(context.Background(), b.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Len(t, f.store.ActiveBookings(monday), 1)
	assert.Equal(t, []string{"release:FORBIDDEN"}, f.events.RejectLog)
}

func TestRelease_AlreadyVacated(t *testing.T) {
	f := newFixture()
	owner := f.store.AddUser("owner", domain.BatchA, domain.RoleEmployee)
	b := f.book(t, owner, 1, monday)

	_, err := f.svc.Release(context.Background(), b.ID, owner.ID)
	require.NoError(t, err)

	_, err = f.svc.Release(context.Background(), b.ID, owner.ID)
	assert.ErrorIs(t, err, ErrNoActiveBooking)
}

func TestRelease_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.svc.Release(context.Background(), 999, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.Release(context.Background(), 0, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_NewestFirst(t *testing.T) {
	f := newFixture()
	user := f.store.AddUser("user", domain.BatchA, domain.RoleEmployee)
	f.book(t, user, 2, monday)
	f.book(t, user, 3, tuesday)

	resp, err := f.svc.GetUserBookings(context.Background(), user.ID)
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "2026-01-13", resp.Bookings[0].Date)
	assert.Equal(t, 3, resp.Bookings[0].SeatNumber)
	assert.Equal(t, "user", resp.Bookings[0].UserName)
	assert.Equal(t, "2026-01-12", resp.Bookings[1].Date)
}

func TestGetBookingsByDate_IncludesVacated(t *testing.T) {
	f := newFixture()
	a := f.store.AddUser("a", domain.BatchA, domain.RoleEmployee)
	b := f.store.AddUser("b", domain.BatchA, domain.RoleEmployee)
	first := f.book(t, a, 4, monday)
	f.book(t, b, 2, monday)

	_, err := f.svc.Release(context.Background(), first.ID, a.ID)
	require.NoError(t, err)

	resp, err := f.svc.GetBookingsByDate(context.Background(), monday.Add(8*time.Hour))
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, 2, resp.Bookings[0].SeatNumber)
	assert.Equal(t, "VACATED", resp.Bookings[1].Status)
}
