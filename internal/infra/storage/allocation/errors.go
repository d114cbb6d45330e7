package allocation

import "errors"

var (
	// ErrAllocationNotFound возвращается, когда распределение не найдено
	ErrAllocationNotFound = errors.New("allocation.repository: allocation not found")

	ErrBuildQuery = errors.New("allocation.repository: failed to build query")
	ErrExecQuery  = errors.New("allocation.repository: failed to execute query")
	ErrScanRow    = errors.New("allocation.repository: failed to scan row")
)
