package block_seat

import (
	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	blockSeat "github.com/vinaywa/Seat-Booking-System/internal/usecase/block_seat"
)

// BlockSeatRequest HTTP request model
// Тело может быть пустым, тогда блокируем для вызывающего
type BlockSeatRequest struct {
	UserID int64 `json:"userId"`
}

type BlockResponse struct {
	BookingID  int64  `json:"bookingId"`
	UserID     int64  `json:"userId"`
	SeatID     int64  `json:"seatId"`
	SeatNumber int    `json:"seatNumber"`
	SeatClass  string `json:"seatClass"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func (r *BlockSeatRequest) ToUseCaseRequest(callerID int64) *blockSeat.Request {
	userID := r.UserID
	if userID == 0 {
		userID = callerID
	}
	return &blockSeat.Request{UserID: userID, CallerID: callerID}
}

func FromUseCaseResponse(resp *blockSeat.Response) *BlockResponse {
	return &BlockResponse{
		BookingID:  resp.BookingID,
		UserID:     resp.UserID,
		SeatID:     resp.SeatID,
		SeatNumber: resp.SeatNumber,
		SeatClass:  resp.SeatClass,
		Date:       resp.Date.Format(domain.DateFormat),
		Status:     resp.Status,
	}
}
