package vacate_seat

import "time"

// Request запрос на освобождение места
// CallerID, отличный от UserID, должен быть администратором
type Request struct {
	UserID   int64
	CallerID int64
	Date     time.Time
}

// Response освобожденная бронь
type Response struct {
	BookingID int64
	UserID    int64
	SeatID    int64
	Date      time.Time
	Status    string
}
