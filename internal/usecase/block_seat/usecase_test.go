package block_seat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seating"
	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
)

var ist = time.FixedZone("IST", 5*3600+1800)

func day(m time.Month, d int) time.Time {
	return time.Date(2026, m, d, 0, 0, 0, 0, time.UTC)
}

func at(d time.Time, hour, minute int) time.Time {
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, ist)
}

type fixture struct {
	store  *memstore.Store
	events *memstore.Events
	uc     *UseCase
}

func newFixture(now time.Time) *fixture {
	store := memstore.New()
	store.AddSeats(1, 5, domain.SeatDesignated)
	events := &memstore.Events{}
	engine := seating.NewEngine(store.Bookings(), store.Seats(), memstore.NopLogger{})
	policy := Policy{CutoffHour: domain.DefaultCutoffHour, Location: ist, HolidaySkipLimit: domain.HolidaySkipLimit}
	uc := NewUseCase(store.Users(), store.Holidays(), engine, store.TxManager(), events, policy, memstore.NopLogger{}).
		WithTimeProvider(memstore.FixedClock{T: now})
	return &fixture{store: store, events: events, uc: uc}
}

func TestExecute_CutoffBoundary(t *testing.T) {
	monday := day(time.January, 12)

	early := newFixture(at(monday, 14, 59))
	user := early.store.AddUser("a", domain.BatchA, domain.RoleEmployee)
	_, err := early.uc.Execute(context.Background(), &Request{UserID: user.ID})
	assert.ErrorIs(t, err, ErrTooEarly)
	assert.Equal(t, []string{"block:TOO_EARLY"}, early.events.RejectLog)

	onTime := newFixture(at(monday, 15, 0))
	user = onTime.store.AddUser("a", domain.BatchA, domain.RoleEmployee)
	resp, err := onTime.uc.Execute(context.Background(), &Request{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, day(time.January, 13), resp.Date)
	assert.Equal(t, "BLOCKED", resp.Status)
	assert.Equal(t, []string{"block:BLOCKED"}, onTime.events.ChangeLog)
}

func TestExecute_CutoffUsesOfficeTimezone(t *testing.T) {
	// 09:30 UTC is 15:00 in the office
	f := newFixture(time.Date(2026, 1, 12, 9, 30, 0, 0, time.UTC))
	user := f.store.AddUser("a", domain.BatchA, domain.RoleEmployee)

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, day(time.January, 13), resp.Date)
}

func TestExecute_FridayBlocksMonday(t *testing.T) {
	// Monday 2026-01-19 is ISO week 4 (WeekTwo): batch B designated Mon-Wed
	f := newFixture(at(day(time.January, 16), 16, 0))
	user := f.store.AddUser("b", domain.BatchB, domain.RoleEmployee)

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, day(time.January, 19), resp.Date)
	assert.Equal(t, time.Monday, resp.Date.Weekday())
}

func TestExecute_SkipsHoliday(t *testing.T) {
	f := newFixture(at(day(time.January, 12), 15, 30))
	f.store.AddHoliday(day(time.January, 13), "Pongal")
	user := f.store.AddUser("a", domain.BatchA, domain.RoleEmployee)

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, day(time.January, 14), resp.Date)
}

// working days after Monday 2026-01-12
var workingDays = []time.Time{
	day(time.January, 13), day(time.January, 14), day(time.January, 15), day(time.January, 16),
	day(time.January, 19), day(time.January, 20), day(time.January, 21), day(time.January, 22),
	day(time.January, 23), day(time.January, 26), day(time.January, 27),
}

func TestExecute_HolidaySkipLimit(t *testing.T) {
	t.Run("ten holidays are skipped", func(t *testing.T) {
		f := newFixture(at(day(time.January, 12), 15, 0))
		for _, d := range workingDays[:10] {
			f.store.AddHoliday(d, "shutdown")
		}
		user := f.store.AddUser("a", domain.BatchA, domain.RoleEmployee)

		resp, err := f.uc.Execute(context.Background(), &Request{UserID: user.ID})
		require.NoError(t, err)
		assert.Equal(t, day(time.January, 27), resp.Date)
	})

	t.Run("eleven holidays exhaust the limit", func(t *testing.T) {
		f := newFixture(at(day(time.January, 12), 15, 0))
		for _, d := range workingDays {
			f.store.AddHoliday(d, "shutdown")
		}
		user := f.store.AddUser("a", domain.BatchA, domain.RoleEmployee)

		_, err := f.uc.Execute(context.Background(), &Request{UserID: user.ID})
		assert.ErrorIs(t, err, ErrNoAvailableDay)
		assert.Zero(t, f.store.AllBookings())
	})
}

func TestExecute_NotBatchDay(t *testing.T) {
	// Tuesday of WeekOne belongs to batch A
	f := newFixture(at(day(time.January, 12), 15, 0))
	user := f.store.AddUser("b", domain.BatchB, domain.RoleEmployee)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: user.ID})
	assert.ErrorIs(t, err, ErrNotBatchDay)
}

func TestExecute_AlreadyBlocked(t *testing.T) {
	f := newFixture(at(day(time.January, 12), 15, 0))
	user := f.store.AddUser("a", domain.BatchA, domain.RoleEmployee)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: user.ID})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{UserID: user.ID})
	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_UnknownUser(t *testing.T) {
	f := newFixture(at(day(time.January, 12), 15, 0))

	_, err := f.uc.Execute(context.Background(), &Request{UserID: 77})
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = f.uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_BlockingForAnotherUserRequiresAdmin(t *testing.T) {
	f := newFixture(at(day(time.January, 12), 16, 0))
	target := f.store.AddUser("target", domain.BatchA, domain.RoleEmployee)
	colleague := f.store.AddUser("colleague", domain.BatchA, domain.RoleEmployee)
	admin := f.store.AddUser("admin", domain.BatchB, domain.RoleAdmin)

	_, err := f.uc.Execute(context.Background(), &Request{UserID: target.ID, CallerID: colleague.ID})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Zero(t, f.store.AllBookings())
	assert.Equal(t, []string{"block:FORBIDDEN"}, f.events.RejectLog)

	resp, err := f.uc.Execute(context.Background(), &Request{UserID: target.ID, CallerID: admin.ID})
	require.NoError(t, err)
	assert.Equal(t, target.ID, resp.UserID)
	assert.Equal(t, day(time.January, 13), resp.Date)
}
