package user

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

func TestGetByID(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, email, batch, squad_id, role FROM users WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(3), "Alpha Member 3", "alpha3@company.com", "A", int64(1), "EMPLOYEE"))

	u, err := repo.GetByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, domain.BatchA, u.Batch)
	require.NotNil(t, u.SquadID)
	assert.Equal(t, int64(1), *u.SquadID)
	assert.False(t, u.IsAdmin())
}

func TestGetByID_NotFoundAndNullSquad(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("FROM users").WillReturnRows(sqlmock.NewRows(userColumns))
	_, err := repo.GetByID(context.Background(), 404)
	assert.ErrorIs(t, err, ErrUserNotFound)

	mock.ExpectQuery("FROM users").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(int64(5), "Solo", "solo@company.com", "B", nil, "ADMIN"))
	u, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Nil(t, u.SquadID)
	assert.True(t, u.IsAdmin())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name,email,batch,squad_id,role) VALUES ($1,$2,$3,$4,$5) RETURNING id")).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err := repo.Create(context.Background(), &domain.User{
		Name: "Dup", Email: "dup@company.com", Batch: domain.BatchA, Role: domain.RoleEmployee,
	})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(81)))

	u, err := repo.Create(context.Background(), &domain.User{
		Name: "New", Email: "new@company.com", Batch: domain.BatchB, Role: domain.RoleEmployee,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(81), u.ID)
}

func TestUpdate_UnknownSquad(t *testing.T) {
	repo, mock := newRepo(t)
	squad := int64(999)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET batch = $1, role = $2, squad_id = $3 WHERE id = $4")).
		WillReturnError(&pq.Error{Code: foreignKeyViolation})

	_, err := repo.Update(context.Background(), &domain.User{ID: 1, Batch: domain.BatchA, Role: domain.RoleAdmin, SquadID: &squad})
	assert.ErrorIs(t, err, ErrSquadNotFound)
}

func TestListBySquadIDs(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE squad_id IN ($1,$2) ORDER BY id ASC")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(int64(1), "A1", "a1@company.com", "A", int64(1), "ADMIN").
			AddRow(int64(9), "B1", "b1@company.com", "A", int64(2), "EMPLOYEE"))

	users, err := repo.ListBySquadIDs(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
