package allocation

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestUpsert(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(
		"INSERT INTO allocations (squad_id,week,year,seat_ids) VALUES ($1,$2,$3,$4) ON CONFLICT (squad_id, week, year) DO UPDATE",
	)).
		WithArgs(int64(2), 3, 2026, "{6,7,8,9,10}").
		WillReturnRows(sqlmock.NewRows([]string{"id", "updated_at"}).AddRow(int64(12), now))

	got, err := repo.Upsert(context.Background(), &domain.Allocation{
		SquadID: 2, Week: 3, Year: 2026, SeatIDs: []int64{6, 7, 8, 9, 10},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(12), got.ID)
	assert.Equal(t, now, got.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByWeek(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM allocations WHERE week = $1 AND year = $2 ORDER BY squad_id ASC")).
		WithArgs(3, 2026).
		WillReturnRows(sqlmock.NewRows(allocationColumns).
			AddRow(int64(1), int64(1), 3, 2026, "{1,2,3}", now).
			AddRow(int64(2), int64(2), 3, 2026, "{4,5,6}", now))

	got, err := repo.ListByWeek(context.Background(), 3, 2026)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []int64{4, 5, 6}, got[1].SeatIDs)
}

func TestGetBySquadAndWeek_NotFound(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM allocations WHERE squad_id = $1 AND week = $2 AND year = $3")).
		WithArgs(int64(5), 3, 2026).
		WillReturnRows(sqlmock.NewRows(allocationColumns))

	_, err := repo.GetBySquadAndWeek(context.Background(), 5, 3, 2026)
	assert.ErrorIs(t, err, ErrAllocationNotFound)
}
