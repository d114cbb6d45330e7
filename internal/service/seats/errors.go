package seats

import "errors"

var (
	// ErrSeatNotFound возвращается, когда место не найдено
	ErrSeatNotFound = errors.New("seat not found")

	// ErrAccessDenied возвращается, когда вызывающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
