package seating

import "errors"

var (
	// ErrNotBatchDay дата не входит в дни batch пользователя
	ErrNotBatchDay = errors.New("seating: date is not a designated day of the batch")

	// ErrAlreadyBooked у пользователя уже есть активная бронь на дату
	ErrAlreadyBooked = errors.New("seating: user already holds a seat on date")

	// ErrSeatsFull нет свободных активных мест на дату
	ErrSeatsFull = errors.New("seating: no free seats on date")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("seating: internal error")
)
