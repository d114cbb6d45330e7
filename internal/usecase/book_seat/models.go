package book_seat

import "time"

// Request запрос на бронирование места
// CallerID, отличный от UserID, должен быть администратором
type Request struct {
	UserID   int64
	CallerID int64
	Date     time.Time
}

// Response выданное место
type Response struct {
	BookingID  int64
	UserID     int64
	SeatID     int64
	SeatNumber int
	SeatClass  string
	Date       time.Time
	Status     string
}
