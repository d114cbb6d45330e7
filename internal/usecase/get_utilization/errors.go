package get_utilization

import "errors"

var (
	ErrInvalidInput = errors.New("get_utilization: invalid input data")
	ErrInternal     = errors.New("get_utilization: internal error")
)
