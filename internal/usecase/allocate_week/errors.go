package allocate_week

import "errors"

var (
	ErrInvalidInput = errors.New("allocate_week: invalid input data")

	// ErrForbidden возвращается, когда вызывающий не администратор
	ErrForbidden = errors.New("allocate_week: admin role required")

	ErrUserNotFound = errors.New("allocate_week: caller not found")

	// ErrNoSquads возвращается, когда нет ни одного отряда
	ErrNoSquads = errors.New("allocate_week: no squads to allocate")

	// ErrNoSeats возвращается, когда нет ни одного места
	ErrNoSeats = errors.New("allocate_week: no seats to allocate")

	ErrInternal = errors.New("allocate_week: internal error")
)
