package vacate_seat

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/service/seating"
	"github.com/vinaywa/Seat-Booking-System/internal/testutil/memstore"
	"github.com/vinaywa/Seat-Booking-System/internal/usecase/book_seat"
)

var monday = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

func TestExecute_VacateThenRebook(t *testing.T) {
	store := memstore.New()
	store.AddSeats(1, 1, domain.SeatDesignated)
	events := &memstore.Events{}
	engine := seating.NewEngine(store.Bookings(), store.Seats(), memstore.NopLogger{})
	book := book_seat.NewUseCase(store.Users(), store.Holidays(), engine, store.TxManager(), events, memstore.NopLogger{})
	vacate := NewUseCase(store.Users(), store.Bookings(), events, memstore.NopLogger{})

	first := store.AddUser("first", domain.BatchA, domain.RoleEmployee)
	second := store.AddUser("second", domain.BatchA, domain.RoleEmployee)
	ctx := context.Background()

	_, err := book.Execute(ctx, &book_seat.Request{UserID: first.ID, Date: monday})
	require.NoError(t, err)

	_, err = book.Execute(ctx, &book_seat.Request{UserID: second.ID, Date: monday})
	require.ErrorIs(t, err, book_seat.ErrSeatsFull)

	resp, err := vacate.Execute(ctx, &Request{UserID: first.ID, Date: monday})
	require.NoError(t, err)
	assert.Equal(t, "VACATED", resp.Status)

	// the freed seat goes to the next caller
	rebooked, err := book.Execute(ctx, &book_seat.Request{UserID: second.ID, Date: monday})
	require.NoError(t, err)
	assert.Equal(t, 1, rebooked.SeatNumber)

	// the vacated row stays as history
	assert.Equal(t, 2, store.AllBookings())
	assert.Len(t, store.ActiveBookings(monday), 1)
	assert.Equal(t, []string{"book:BOOKED", "vacate:VACATED", "book:BOOKED"}, events.ChangeLog)
}

func TestExecute_NoActiveBooking(t *testing.T) {
	store := memstore.New()
	events := &memstore.Events{}
	uc := NewUseCase(store.Users(), store.Bookings(), events, memstore.NopLogger{})
	user := store.AddUser("a", domain.BatchA, domain.RoleEmployee)

	_, err := uc.Execute(context.Background(), &Request{UserID: user.ID, Date: monday})
	assert.ErrorIs(t, err, ErrNoActiveBooking)
	assert.Equal(t, []string{"vacate:NO_ACTIVE_BOOKING"}, events.RejectLog)
}

func TestExecute_VacateTwice(t *testing.T) {
	store := memstore.New()
	store.AddSeats(1, 2, domain.SeatDesignated)
	events := &memstore.Events{}
	engine := seating.NewEngine(store.Bookings(), store.Seats(), memstore.NopLogger{})
	book := book_seat.NewUseCase(store.Users(), store.Holidays(), engine, store.TxManager(), events, memstore.NopLogger{})
	uc := NewUseCase(store.Users(), store.Bookings(), events, memstore.NopLogger{})
	user := store.AddUser("a", domain.BatchA, domain.RoleEmployee)

	_, err := book.Execute(context.Background(), &book_seat.Request{UserID: user.ID, Date: monday})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{UserID: user.ID, Date: monday.Add(9 * time.Hour)})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), &Request{UserID: user.ID, Date: monday})
	assert.ErrorIs(t, err, ErrNoActiveBooking)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(memstore.New().Users(), memstore.New().Bookings(), &memstore.Events{}, memstore.NopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_OtherUsersSeatRequiresAdmin(t *testing.T) {
	store := memstore.New()
	store.AddSeats(1, 1, domain.SeatDesignated)
	events := &memstore.Events{}
	engine := seating.NewEngine(store.Bookings(), store.Seats(), memstore.NopLogger{})
	book := book_seat.NewUseCase(store.Users(), store.Holidays(), engine, store.TxManager(), events, memstore.NopLogger{})
	uc := NewUseCase(store.Users(), store.Bookings(), events, memstore.NopLogger{})

	owner := store.AddUser("owner", domain.BatchA, domain.RoleEmployee)
	colleague := store.AddUser("colleague", domain.BatchA, domain.RoleEmployee)
	admin := store.AddUser("admin", domain.BatchB, domain.RoleAdmin)
	ctx := context.Background()

	_, err := book.Execute(ctx, &book_seat.Request{UserID: owner.ID, Date: monday})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, &Request{UserID: owner.ID, CallerID: colleague.ID, Date: monday})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Len(t, store.ActiveBookings(monday), 1)
	assert.Equal(t, []string{"vacate:FORBIDDEN"}, events.RejectLog)

	_, err = uc.Execute(ctx, &Request{UserID: owner.ID, CallerID: 999, Date: monday})
	assert.ErrorIs(t, err, ErrForbidden)

	resp, err := uc.Execute(ctx, &Request{UserID: owner.ID, CallerID: admin.ID, Date: monday})
	require.NoError(t, err)
	assert.Equal(t, owner.ID, resp.UserID)
	assert.Empty(t, store.ActiveBookings(monday))
}
