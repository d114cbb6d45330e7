package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrNoActiveBooking возвращается, когда у пользователя нет активной брони на дату
	ErrNoActiveBooking = errors.New("booking.repository: no active booking")

	// ErrSeatTaken возвращается при нарушении уникальности (seat_id, booking_date)
	ErrSeatTaken = errors.New("booking.repository: seat already taken for date")

	// ErrUserAlreadyBooked возвращается при нарушении уникальности (user_id, booking_date)
	ErrUserAlreadyBooked = errors.New("booking.repository: user already booked for date")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
