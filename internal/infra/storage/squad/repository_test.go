package squad

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
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

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO squads (name,batch) VALUES ($1,$2) RETURNING id")).
		WithArgs("Kilo", "B").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))

	s, err := repo.Create(context.Background(), &domain.Squad{Name: "Kilo", Batch: domain.BatchB})
	require.NoError(t, err)
	assert.Equal(t, int64(11), s.ID)
}

func TestCreate_NameTaken(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("INSERT INTO squads").WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), &domain.Squad{Name: "Alpha", Batch: domain.BatchA})
	assert.ErrorIs(t, err, ErrNameTaken)
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery("FROM squads").WillReturnRows(sqlmock.NewRows([]string{"id", "name", "batch"}))

	_, err := repo.GetByID(context.Background(), 77)
	assert.ErrorIs(t, err, ErrSquadNotFound)
}

func TestList(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, batch FROM squads ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "batch"}).
			AddRow(int64(1), "Alpha", "A").
			AddRow(int64(6), "Foxtrot", "B"))

	squads, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, squads, 2)
	assert.Equal(t, domain.BatchB, squads[1].Batch)
}
