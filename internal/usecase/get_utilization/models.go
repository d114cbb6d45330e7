package get_utilization

import "time"

// Request запрос загрузки офиса на дату
type Request struct {
	Date time.Time
}

// Response загрузка офиса
type Response struct {
	Date               time.Time
	TotalSeats         int
	TotalBooked        int
	UtilizationPercent string
}
