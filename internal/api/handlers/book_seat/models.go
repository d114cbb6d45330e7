package book_seat

import (
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	bookSeat "github.com/vinaywa/Seat-Booking-System/internal/usecase/book_seat"
)

// BookSeatRequest HTTP request model
type BookSeatRequest struct {
	UserID int64  `json:"userId"`
	Date   string `json:"date"` // "2026-01-12"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID  int64  `json:"bookingId"`
	UserID     int64  `json:"userId"`
	SeatID     int64  `json:"seatId"`
	SeatNumber int    `json:"seatNumber"`
	SeatClass  string `json:"seatClass"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Если userId не передан, бронируем для вызывающего
func (r *BookSeatRequest) ToUseCaseRequest(callerID int64) (*bookSeat.Request, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	userID := r.UserID
	if userID == 0 {
		userID = callerID
	}
	return &bookSeat.Request{UserID: userID, CallerID: callerID, Date: date}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookSeat.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:  resp.BookingID,
		UserID:     resp.UserID,
		SeatID:     resp.SeatID,
		SeatNumber: resp.SeatNumber,
		SeatClass:  resp.SeatClass,
		Date:       resp.Date.In(time.UTC).Format(domain.DateFormat),
		Status:     resp.Status,
	}
}
