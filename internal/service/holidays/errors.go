package holidays

import "errors"

var (
	// ErrHolidayNotFound возвращается, когда праздник не найден
	ErrHolidayNotFound = errors.New("holiday not found")

	// ErrHolidayExists возвращается, когда на дату уже есть праздник
	ErrHolidayExists = errors.New("holiday already exists for date")

	// ErrPastDate возвращается при изменении праздника в прошлом или сегодня
	ErrPastDate = errors.New("holiday date must be in the future")

	// ErrAccessDenied возвращается, когда вызывающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
