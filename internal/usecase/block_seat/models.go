package block_seat

import "time"

// Policy параметры блокировки места
type Policy struct {
	CutoffHour       int
	Location         *time.Location
	HolidaySkipLimit int
}

// Request запрос на блокировку места на следующий рабочий день
// CallerID, отличный от UserID, должен быть администратором
type Request struct {
	UserID   int64
	CallerID int64
}

// Response заблокированное место
type Response struct {
	BookingID  int64
	UserID     int64
	SeatID     int64
	SeatNumber int
	SeatClass  string
	Date       time.Time
	Status     string
}
