package vacate_seat

import (
	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	vacateSeat "github.com/vinaywa/Seat-Booking-System/internal/usecase/vacate_seat"
)

type VacateSeatRequest struct {
	UserID int64  `json:"userId"`
	Date   string `json:"date"`
}

type VacateResponse struct {
	BookingID int64  `json:"bookingId"`
	UserID    int64  `json:"userId"`
	SeatID    int64  `json:"seatId"`
	Date      string `json:"date"`
	Status    string `json:"status"`
}

func (r *VacateSeatRequest) ToUseCaseRequest(callerID int64) (*vacateSeat.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	userID := r.UserID
	if userID == 0 {
		userID = callerID
	}
	return &vacateSeat.Request{UserID: userID, CallerID: callerID, Date: date}, nil
}

func FromUseCaseResponse(resp *vacateSeat.Response) *VacateResponse {
	return &VacateResponse{
		BookingID: resp.BookingID,
		UserID:    resp.UserID,
		SeatID:    resp.SeatID,
		Date:      resp.Date.Format(domain.DateFormat),
		Status:    resp.Status,
	}
}
