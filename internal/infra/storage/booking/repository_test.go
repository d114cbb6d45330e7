package booking

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

var testDate = time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO bookings (user_id,seat_id,booking_date,status) VALUES ($1,$2,$3,$4) RETURNING id, created_at, updated_at",
	)).
		WithArgs(int64(7), int64(3), testDate, "BOOKED").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	got, err := repo.Create(context.Background(), &domain.Booking{
		UserID: 7, SeatID: 3, Date: testDate, Status: domain.StatusBooked,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(11), got.ID)
	assert.Equal(t, now, got.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolations(t *testing.T) {
	cases := []struct {
		constraint string
		want       error
	}{
		{seatDateIndex, ErrSeatTaken},
		{userDateIndex, ErrUserAlreadyBooked},
	}

	for _, tc := range cases {
		t.Run(tc.constraint, func(t *testing.T) {
			repo, mock := newRepo(t)
			mock.ExpectQuery("INSERT INTO bookings").
				WillReturnError(&pq.Error{Code: uniqueViolation, Constraint: tc.constraint})

			_, err := repo.Create(context.Background(), &domain.Booking{
				UserID: 1, SeatID: 1, Date: testDate, Status: domain.StatusBooked,
			})
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCreate_OtherError(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Booking{Status: domain.StatusBooked})
	assert.ErrorIs(t, err, ErrExecQuery)
}

func TestLockDate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1)")).
		WithArgs(DateLockKey(testDate)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.LockDate(context.Background(), testDate))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDateLockKey_DistinctPerDay(t *testing.T) {
	assert.NotEqual(t, DateLockKey(testDate), DateLockKey(testDate.AddDate(0, 0, 1)))
	assert.Equal(t, DateLockKey(testDate), DateLockKey(testDate.Add(5*time.Hour)))
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE id = $1")).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetActiveByUserAndDate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT id, user_id, seat_id, booking_date, status, created_at, updated_at FROM bookings WHERE user_id = $1 AND booking_date = $2 AND status IN ($3,$4) LIMIT 1",
	)).
		WithArgs(int64(7), testDate, "BOOKED", "BLOCKED").
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(int64(5), int64(7), int64(2), testDate, "BLOCKED", now, now))

	got, err := repo.GetActiveByUserAndDate(context.Background(), 7, testDate)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusBlocked, got.Status)
	assert.Equal(t, int64(2), got.SeatID)
}

func TestVacateByUserAndDate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"UPDATE bookings SET status = $1, updated_at = NOW() WHERE (user_id = $2 AND booking_date = $3) AND status IN ($4,$5) RETURNING",
	)).
		WithArgs("VACATED", int64(7), testDate, "BOOKED", "BLOCKED").
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(int64(5), int64(7), int64(2), testDate, "VACATED", now, now))

	got, err := repo.VacateByUserAndDate(context.Background(), 7, testDate)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusVacated, got.Status)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestVacateByID_NoActive(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("UPDATE bookings SET status").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	_, err := repo.VacateByID(context.Background(), 5)
	assert.ErrorIs(t, err, ErrNoActiveBooking)
}

func TestCountActiveByDate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM bookings WHERE booking_date = $1 AND status IN ($2,$3)")).
		WithArgs(testDate, "BOOKED", "BLOCKED").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	count, err := repo.CountActiveByDate(context.Background(), testDate)
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestListDetailsByUser(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "seat_id", "booking_date", "status", "created_at", "updated_at",
		"seat_number", "class", "name", "email", "batch",
	}).
		AddRow(int64(2), int64(7), int64(4), testDate.AddDate(0, 0, 1), "BOOKED", now, now, 4, "DESIGNATED", "Alpha Member 2", "alpha2@company.com", "A").
		AddRow(int64(1), int64(7), int64(1), testDate, "VACATED", now, now, 1, "DESIGNATED", "Alpha Member 2", "alpha2@company.com", "A")

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY b.booking_date DESC, b.id DESC")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	got, err := repo.ListDetailsByUser(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].SeatNumber)
	assert.Equal(t, domain.BatchA, got[0].UserBatch)
	assert.Equal(t, domain.StatusVacated, got[1].Status)
}
