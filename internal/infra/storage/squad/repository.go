package squad

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

const uniqueViolation = "23505"

// Repository репозиторий отрядов
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает отряд
func (r *Repository) Create(ctx context.Context, squad *domain.Squad) (*domain.Squad, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("squads").
		Columns("name", "batch").
		Values(squad.Name, squad.Batch).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&squad.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return squad, nil
}

// GetByID получает отряд по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Squad, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "batch").
		From("squads").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var squad domain.Squad
	err = executor.QueryRowContext(ctx, query, args...).Scan(&squad.ID, &squad.Name, &squad.Batch)
	if err == sql.ErrNoRows {
		return nil, ErrSquadNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan squad: %v", ErrScanRow, err)
	}
	return &squad, nil
}

// List получает все отряды по возрастанию ID
func (r *Repository) List(ctx context.Context) ([]*domain.Squad, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "batch").
		From("squads").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var squads []*domain.Squad
	for rows.Next() {
		var squad domain.Squad
		if err := rows.Scan(&squad.ID, &squad.Name, &squad.Batch); err != nil {
			return nil, fmt.Errorf("%w: List - scan squad: %v", ErrScanRow, err)
		}
		squads = append(squads, &squad)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows iteration: %v", ErrScanRow, err)
	}
	return squads, nil
}
