package get_available_seats

import (
	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	getAvailableSeats "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_available_seats"
)

type SeatResponse struct {
	ID     int64  `json:"id"`
	Number int    `json:"number"`
	Class  string `json:"class"`
}

type AvailableSeatsResponse struct {
	Date      string         `json:"date"`
	Total     int            `json:"total"`
	Available int            `json:"available"`
	Seats     []SeatResponse `json:"seats"`
}

func FromUseCaseResponse(resp *getAvailableSeats.Response) *AvailableSeatsResponse {
	seats := make([]SeatResponse, 0, len(resp.Seats))
	for _, s := range resp.Seats {
		seats = append(seats, SeatResponse{ID: s.ID, Number: s.Number, Class: string(s.Class)})
	}
	return &AvailableSeatsResponse{
		Date:      resp.Date.Format(domain.DateFormat),
		Total:     resp.Total,
		Available: resp.Available,
		Seats:     seats,
	}
}
