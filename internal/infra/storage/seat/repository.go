package seat

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/pkg/dbmetrics"
	"github.com/vinaywa/Seat-Booking-System/pkg/psqlbuilder"
)

// freeOnDate место без активной брони на дату
const freeOnDate = "NOT EXISTS (SELECT 1 FROM bookings b WHERE b.seat_id = s.id AND b.booking_date = ? AND b.status IN (?, ?))"

// Repository репозиторий мест
type Repository struct {
	db DBExecutor
}

func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func seatSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select("s.id", "s.seat_number", "s.class", "s.is_active").From("seats s")
}

// List возвращает все места по возрастанию номера
func (r *Repository) List(ctx context.Context) ([]*domain.Seat, error) {
	return r.query(ctx, "List", seatSelect().OrderBy("s.seat_number ASC"))
}

// ListByIDs возвращает места с указанными ID по возрастанию номера
func (r *Repository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Seat, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.query(ctx, "ListByIDs", seatSelect().Where(squirrel.Eq{"s.id": ids}).OrderBy("s.seat_number ASC"))
}

// ListFree возвращает активные места без активной брони на дату по возрастанию номера
func (r *Repository) ListFree(ctx context.Context, date time.Time) ([]*domain.Seat, error) {
	return r.query(ctx, "ListFree", freeSelect(date).OrderBy("s.seat_number ASC"))
}

// FirstFree возвращает свободное активное место с наименьшим номером
func (r *Repository) FirstFree(ctx context.Context, date time.Time) (*domain.Seat, error) {
	seats, err := r.query(ctx, "FirstFree", freeSelect(date).OrderBy("s.seat_number ASC").Limit(1))
	if err != nil {
		return nil, err
	}
	if len(seats) == 0 {
		return nil, ErrNoFreeSeat
	}
	return seats[0], nil
}

func freeSelect(date time.Time) squirrel.SelectBuilder {
	return seatSelect().
		Where(squirrel.Eq{"s.is_active": true}).
		Where(squirrel.Expr(freeOnDate, date, domain.StatusBooked, domain.StatusBlocked))
}

// Count возвращает общее число мест (включая неактивные)
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("seats").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}
	return count, nil
}

// SetActive включает или выводит место на обслуживание
func (r *Repository) SetActive(ctx context.Context, id int64, active bool) (*domain.Seat, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("seats").
		Set("is_active", active).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING id, seat_number, class, is_active").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	var seat domain.Seat
	err = executor.QueryRowContext(ctx, query, args...).Scan(&seat.ID, &seat.Number, &seat.Class, &seat.IsActive)
	if err == sql.ErrNoRows {
		return nil, ErrSeatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: SetActive - execute update: %v", ErrExecQuery, err)
	}
	return &seat, nil
}

func (r *Repository) query(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Seat, error) {
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

	var seats []*domain.Seat
	for rows.Next() {
		var seat domain.Seat
		if err := rows.Scan(&seat.ID, &seat.Number, &seat.Class, &seat.IsActive); err != nil {
			return nil, fmt.Errorf("%w: %s - scan seat: %v", ErrScanRow, op, err)
		}
		seats = append(seats, &seat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}
	return seats, nil
}
