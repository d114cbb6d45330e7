package booking

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

const (
	// Имена частичных уникальных индексов (см. миграцию 00001_init.sql)
	seatDateIndex = "ux_bookings_seat_date_active"
	userDateIndex = "ux_bookings_user_date_active"

	uniqueViolation = "23505"

	// lockNamespace старшие 32 бита ключа advisory lock для бронирований
	lockNamespace int64 = 0x5EA7 << 32
)

var activeStatuses = []string{string(domain.StatusBooked), string(domain.StatusBlocked)}

var bookingColumns = []string{
	"id",
	"user_id",
	"seat_id",
	"booking_date",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockDate берет транзакционную advisory блокировку на дату
// Должен вызываться внутри транзакции: блокировка снимается при commit/rollback
func (r *Repository) LockDate(ctx context.Context, date time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if _, err := executor.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", DateLockKey(date)); err != nil {
		return fmt.Errorf("%w: LockDate - acquire lock: %v", ErrExecQuery, err)
	}
	return nil
}

// DateLockKey ключ advisory lock для даты (номер дня от эпохи в младших битах)
func DateLockKey(date time.Time) int64 {
	return lockNamespace | (date.Unix() / 86400)
}

// Create создает новое бронирование
// Нарушение частичных уникальных индексов возвращается как ErrSeatTaken / ErrUserAlreadyBooked
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"seat_id",
			"booking_date",
			"status",
		).
		Values(
			booking.UserID,
			booking.SeatID,
			booking.Date,
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			switch pqErr.Constraint {
			case seatDateIndex:
				return nil, ErrSeatTaken
			case userDateIndex:
				return nil, ErrUserAlreadyBooked
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetActiveByUserAndDate получает активную (BOOKED/BLOCKED) бронь пользователя на дату
func (r *Repository) GetActiveByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"status": activeStatuses}).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUserAndDate - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNoActiveBooking
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByUserAndDate - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// VacateByUserAndDate переводит активную бронь пользователя на дату в VACATED
// Условный UPDATE: при отсутствии активной брони возвращает ErrNoActiveBooking
func (r *Repository) VacateByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.Booking, error) {
	return r.vacate(ctx, "VacateByUserAndDate", squirrel.And{
		squirrel.Eq{"user_id": userID},
		squirrel.Eq{"booking_date": date},
	})
}

// VacateByID переводит активную бронь с указанным ID в VACATED
func (r *Repository) VacateByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.vacate(ctx, "VacateByID", squirrel.Eq{"id": id})
}

func (r *Repository) vacate(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusVacated).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(where).
		Where(squirrel.Eq{"status": activeStatuses}).
		Suffix("RETURNING id, user_id, seat_id, booking_date, status, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNoActiveBooking
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	return booking, nil
}

// CountActiveByDate считает активные бронирования на дату
func (r *Repository) CountActiveByDate(ctx context.Context, date time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"status": activeStatuses}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveByDate - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// ListActiveBetween получает активные бронирования в диапазоне дат [from, to]
func (r *Repository) ListActiveBetween(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.LtOrEq{"booking_date": to}).
		Where(squirrel.Eq{"status": activeStatuses}).
		OrderBy("booking_date ASC", "id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveBetween - scan booking: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveBetween - rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListDetailsByDate получает все бронирования на дату (любой статус) вместе с местом и пользователем
func (r *Repository) ListDetailsByDate(ctx context.Context, date time.Time) ([]*domain.BookingDetails, error) {
	return r.listDetails(ctx, "ListDetailsByDate",
		squirrel.Eq{"b.booking_date": date},
		"s.seat_number ASC", "b.id ASC",
	)
}

// ListDetailsByUser получает историю бронирований пользователя, новые первыми
func (r *Repository) ListDetailsByUser(ctx context.Context, userID int64) ([]*domain.BookingDetails, error) {
	return r.listDetails(ctx, "ListDetailsByUser",
		squirrel.Eq{"b.user_id": userID},
		"b.booking_date DESC", "b.id DESC",
	)
}

func (r *Repository) listDetails(ctx context.Context, op string, where squirrel.Sqlizer, orderBy ...string) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"b.seat_id",
		"b.booking_date",
		"b.status",
		"b.created_at",
		"b.updated_at",
		"s.seat_number",
		"s.class",
		"u.name",
		"u.email",
		"u.batch",
	).
		From("bookings b").
		Join("seats s ON s.id = b.seat_id").
		Join("users u ON u.id = b.user_id").
		Where(where).
		OrderBy(orderBy...).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	var result []*domain.BookingDetails
	for rows.Next() {
		var d domain.BookingDetails
		var createdAt, updatedAt sql.NullTime

		if err := rows.Scan(
			&d.ID,
			&d.UserID,
			&d.SeatID,
			&d.Date,
			&d.Status,
			&createdAt,
			&updatedAt,
			&d.SeatNumber,
			&d.SeatClass,
			&d.UserName,
			&d.UserEmail,
			&d.UserBatch,
		); err != nil {
			return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
		}

		d.Date = d.Date.UTC()
		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time
		result = append(result, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	if err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.SeatID,
		&booking.Date,
		&booking.Status,
		&createdAt,
		&updatedAt,
	); err != nil {
		return nil, err
	}

	booking.Date = booking.Date.UTC()
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
