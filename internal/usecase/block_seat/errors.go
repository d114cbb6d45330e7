package block_seat

import "errors"

var (
	ErrInvalidInput = errors.New("block_seat: invalid input data")

	// ErrTooEarly возвращается до наступления часа отсечки
	ErrTooEarly = errors.New("block_seat: blocking opens at the cutoff hour")

	// ErrNoAvailableDay возвращается, когда за лимит попыток не найден рабочий день без праздника
	ErrNoAvailableDay = errors.New("block_seat: no working day available within the holiday skip limit")

	ErrUserNotFound  = errors.New("block_seat: user not found")
	ErrNotBatchDay   = errors.New("block_seat: next working day is not a designated day of the batch")
	ErrAlreadyBooked = errors.New("block_seat: user already has a seat on the next working day")
	ErrSeatsFull     = errors.New("block_seat: all seats are taken")

	// ErrForbidden возвращается, когда место для другого пользователя блокирует не администратор
	ErrForbidden = errors.New("block_seat: only an admin can reserve a seat for another user")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("block_seat: internal error")
)
