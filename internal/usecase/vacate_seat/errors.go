package vacate_seat

import "errors"

var (
	ErrInvalidInput = errors.New("vacate_seat: invalid input data")

	// ErrNoActiveBooking возвращается, когда у пользователя нет активной брони на дату
	ErrNoActiveBooking = errors.New("vacate_seat: no active booking for date")

	// ErrForbidden возвращается, когда чужую бронь освобождает не администратор
	ErrForbidden = errors.New("vacate_seat: only the owner or an admin can vacate the seat")

	ErrInternal = errors.New("vacate_seat: internal error")
)
