package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/pkg/dbmetrics"
	"github.com/vinaywa/Seat-Booking-System/pkg/psqlbuilder"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

var userColumns = []string{"id", "name", "email", "batch", "squad_id", "role"}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует пользователя
func (r *Repository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("name", "email", "batch", "squad_id", "role").
		Values(user.Name, user.Email, user.Batch, user.SquadID, user.Role).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if mapped := mapPQError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return user, nil
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	user, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan user: %v", ErrScanRow, err)
	}
	return user, nil
}

// ListBySquadIDs получает участников указанных отрядов, упорядоченных по ID
func (r *Repository) ListBySquadIDs(ctx context.Context, squadIDs []int64) ([]*domain.User, error) {
	if len(squadIDs) == 0 {
		return nil, nil
	}
	return r.list(ctx, "ListBySquadIDs", psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"squad_id": squadIDs}).
		OrderBy("id ASC"))
}

// List получает всех пользователей
func (r *Repository) List(ctx context.Context) ([]*domain.User, error) {
	return r.list(ctx, "List", psqlbuilder.Select(userColumns...).From("users").OrderBy("id ASC"))
}

// Update сохраняет batch, роль и отряд пользователя
func (r *Repository) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("users").
		Set("batch", user.Batch).
		Set("role", user.Role).
		Set("squad_id", user.SquadID).
		Where(squirrel.Eq{"id": user.ID}).
		Suffix("RETURNING id, name, email, batch, squad_id, role").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	updated, err := scanUser(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		if mapped := mapPQError(err); mapped != nil {
			return nil, mapped
		}
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}
	return updated, nil
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}
	return users, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var user domain.User
	var squadID sql.NullInt64

	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Batch, &squadID, &user.Role); err != nil {
		return nil, err
	}
	if squadID.Valid {
		id := squadID.Int64
		user.SquadID = &id
	}
	return &user, nil
}

func mapPQError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}
	switch string(pqErr.Code) {
	case uniqueViolation:
		return ErrEmailTaken
	case foreignKeyViolation:
		return ErrSquadNotFound
	}
	return nil
}
