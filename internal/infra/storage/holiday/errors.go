package holiday

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда праздник не найден
	ErrHolidayNotFound = errors.New("holiday.repository: holiday not found")

	// ErrHolidayExists возвращается, когда на дату уже есть праздник
	ErrHolidayExists = errors.New("holiday.repository: holiday already exists for date")

	ErrBuildQuery = errors.New("holiday.repository: failed to build query")
	ErrExecQuery  = errors.New("holiday.repository: failed to execute query")
	ErrScanRow    = errors.New("holiday.repository: failed to scan row")
)
