package allocation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/pkg/dbmetrics"
	"github.com/vinaywa/Seat-Booking-System/pkg/psqlbuilder"
)

var allocationColumns = []string{"id", "squad_id", "week", "year", "seat_ids", "updated_at"}

// Repository репозиторий недельных распределений мест по отрядам
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Upsert сохраняет распределение отряда на неделю
// Существующая запись для (squad_id, week, year) перезаписывается
func (r *Repository) Upsert(ctx context.Context, allocation *domain.Allocation) (*domain.Allocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("allocations").
		Columns("squad_id", "week", "year", "seat_ids").
		Values(allocation.SquadID, allocation.Week, allocation.Year, pq.Array(allocation.SeatIDs)).
		Suffix("ON CONFLICT (squad_id, week, year) DO UPDATE SET seat_ids = EXCLUDED.seat_ids, updated_at = NOW() RETURNING id, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&allocation.ID, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}
	allocation.UpdatedAt = updatedAt.Time

	return allocation, nil
}

// ListByWeek получает распределения на ISO неделю, упорядоченные по отряду
func (r *Repository) ListByWeek(ctx context.Context, week, year int) ([]*domain.Allocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(allocationColumns...).
		From("allocations").
		Where(squirrel.Eq{"week": week, "year": year}).
		OrderBy("squad_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWeek - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByWeek - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var allocations []*domain.Allocation
	for rows.Next() {
		allocation, err := scanAllocation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByWeek - scan allocation: %v", ErrScanRow, err)
		}
		allocations = append(allocations, allocation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByWeek - rows iteration: %v", ErrScanRow, err)
	}
	return allocations, nil
}

// GetBySquadAndWeek получает распределение отряда на ISO неделю
func (r *Repository) GetBySquadAndWeek(ctx context.Context, squadID int64, week, year int) (*domain.Allocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(allocationColumns...).
		From("allocations").
		Where(squirrel.Eq{"squad_id": squadID, "week": week, "year": year}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySquadAndWeek - build select query: %v", ErrBuildQuery, err)
	}

	allocation, err := scanAllocation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAllocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySquadAndWeek - scan allocation: %v", ErrScanRow, err)
	}
	return allocation, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAllocation(row rowScanner) (*domain.Allocation, error) {
	var allocation domain.Allocation
	var updatedAt sql.NullTime

	if err := row.Scan(
		&allocation.ID,
		&allocation.SquadID,
		&allocation.Week,
		&allocation.Year,
		pq.Array(&allocation.SeatIDs),
		&updatedAt,
	); err != nil {
		return nil, err
	}
	allocation.UpdatedAt = updatedAt.Time
	return &allocation, nil
}
