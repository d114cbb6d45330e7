package holiday

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/pkg/dbmetrics"
	"github.com/vinaywa/Seat-Booking-System/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

// Repository реестр праздников
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет праздник
func (r *Repository) Create(ctx context.Context, holiday *domain.Holiday) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("holidays").
		Columns("holiday_date", "reason").
		Values(holiday.Date, holiday.Reason).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&holiday.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrHolidayExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	return holiday, nil
}

// GetByID получает праздник по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Holiday, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "holiday_date", "reason").
		From("holidays").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var holiday domain.Holiday
	err = executor.QueryRowContext(ctx, query, args...).Scan(&holiday.ID, &holiday.Date, &holiday.Reason)
	if err == sql.ErrNoRows {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan holiday: %v", ErrScanRow, err)
	}
	holiday.Date = holiday.Date.UTC()
	return &holiday, nil
}

// IsHoliday проверяет, является ли дата праздником
func (r *Repository) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		Prefix("SELECT EXISTS (").
		From("holidays").
		Where(squirrel.Eq{"holiday_date": date}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: IsHoliday - build select query: %v", ErrBuildQuery, err)
	}

	var exists bool
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("%w: IsHoliday - scan: %v", ErrScanRow, err)
	}
	return exists, nil
}

// List получает все праздники по возрастанию даты
func (r *Repository) List(ctx context.Context) ([]*domain.Holiday, error) {
	return r.list(ctx, "List", psqlbuilder.Select("id", "holiday_date", "reason").
		From("holidays").
		OrderBy("holiday_date ASC"))
}

// ListBetween получает праздники в диапазоне [from, to]
func (r *Repository) ListBetween(ctx context.Context, from, to time.Time) ([]*domain.Holiday, error) {
	return r.list(ctx, "ListBetween", psqlbuilder.Select("id", "holiday_date", "reason").
		From("holidays").
		Where(squirrel.GtOrEq{"holiday_date": from}).
		Where(squirrel.LtOrEq{"holiday_date": to}).
		OrderBy("holiday_date ASC"))
}

// Delete удаляет праздник
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("holidays").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrHolidayNotFound
	}
	return nil
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Holiday, error) {
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

	var holidays []*domain.Holiday
	for rows.Next() {
		var holiday domain.Holiday
		if err := rows.Scan(&holiday.ID, &holiday.Date, &holiday.Reason); err != nil {
			return nil, fmt.Errorf("%w: %s - scan holiday: %v", ErrScanRow, op, err)
		}
		holiday.Date = holiday.Date.UTC()
		holidays = append(holidays, &holiday)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}
	return holidays, nil
}
