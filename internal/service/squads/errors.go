package squads

import "errors"

var (
	// ErrSquadNotFound возвращается, когда отряд не найден
	ErrSquadNotFound = errors.New("squad not found")

	// ErrNameTaken возвращается при повторном имени отряда
	ErrNameTaken = errors.New("squad name already exists")

	// ErrAllocationNotFound возвращается, когда для отряда нет распределения на неделю
	ErrAllocationNotFound = errors.New("allocation not found")

	// ErrAccessDenied возвращается, когда вызывающий не администратор
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
