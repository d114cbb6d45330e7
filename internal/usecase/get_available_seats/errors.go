package get_available_seats

import "errors"

var (
	ErrInvalidInput = errors.New("get_available_seats: invalid input data")
	ErrInternal     = errors.New("get_available_seats: internal error")
)
