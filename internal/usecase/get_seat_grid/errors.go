package get_seat_grid

import "errors"

var (
	ErrInvalidInput = errors.New("get_seat_grid: invalid input data")
	ErrUserNotFound = errors.New("get_seat_grid: user not found")
	ErrInternal     = errors.New("get_seat_grid: internal error")
)
