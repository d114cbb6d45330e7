package get_seat_grid

import "time"

// Request запрос сетки мест на неделю для пользователя
type Request struct {
	ViewerID int64
	Date     time.Time
}

// Cell состояние места на дату
type Cell struct {
	Date      time.Time
	State     string
	BookingID *int64
	Bookable  bool
}

// Row место и его ячейки по дням недели
type Row struct {
	SeatID     int64
	SeatNumber int
	SeatClass  string
	IsActive   bool
	Cells      []Cell
}

// Response сетка мест на ISO неделю
type Response struct {
	Week           int
	Year           int
	Parity         string
	Batch          string
	Dates          []time.Time
	DesignatedDays []time.Time
	Rows           []Row
}
