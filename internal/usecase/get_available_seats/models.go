package get_available_seats

import (
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// Request запрос свободных мест на дату
type Request struct {
	Date time.Time
}

// Response свободные места на дату
// Total - все места, включая неактивные; Seats - активные без активной брони
type Response struct {
	Date      time.Time
	Total     int
	Available int
	Seats     []domain.Seat
}
