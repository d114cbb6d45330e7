package book_seat

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_seat: invalid input data")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("book_seat: user not found")

	// ErrWeekend возвращается для субботы и воскресенья
	ErrWeekend = errors.New("book_seat: bookings are not allowed on weekends")

	// ErrHoliday возвращается для праздничных дней
	ErrHoliday = errors.New("book_seat: bookings are not allowed on holidays")

	// ErrNotBatchDay возвращается, когда дата не входит в дни batch пользователя
	ErrNotBatchDay = errors.New("book_seat: date is not a designated day of the batch")

	// ErrAlreadyBooked возвращается, когда у пользователя уже есть бронь на дату
	ErrAlreadyBooked = errors.New("book_seat: user already has a seat on this date")

	// ErrSeatsFull возвращается, когда все места на дату заняты
	ErrSeatsFull = errors.New("book_seat: all seats are taken")

	// ErrForbidden возвращается, когда место для другого пользователя бронирует не администратор
	ErrForbidden = errors.New("book_seat: only an admin can reserve a seat for another user")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_seat: internal error")
)
