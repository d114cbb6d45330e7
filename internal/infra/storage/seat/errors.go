package seat

import "errors"

var (
	// ErrSeatNotFound возвращается, когда место не найдено
	ErrSeatNotFound = errors.New("seat.repository: seat not found")

	// ErrNoFreeSeat возвращается, когда на дату нет свободного активного места
	ErrNoFreeSeat = errors.New("seat.repository: no free seat")

	ErrBuildQuery = errors.New("seat.repository: failed to build query")
	ErrExecQuery  = errors.New("seat.repository: failed to execute query")
	ErrScanRow    = errors.New("seat.repository: failed to scan row")
)
