package eventbus

import (
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

// Routing keys событий ledger
const (
	RoutingSeatBooked  = "seat.booked"
	RoutingSeatBlocked = "seat.blocked"
	RoutingSeatVacated = "seat.vacated"
)

// SeatEvent сообщение об изменении брони
type SeatEvent struct {
	BookingID  int64  `json:"booking_id"`
	UserID     int64  `json:"user_id"`
	SeatID     int64  `json:"seat_id"`
	SeatNumber int    `json:"seat_number,omitempty"`
	Date       string `json:"date"`
	Status     string `json:"status"`
	OccurredAt string `json:"occurred_at"`
}

// NewSeatEvent собирает событие из брони
func NewSeatEvent(booking *domain.Booking, seatNumber int, at time.Time) SeatEvent {
	return SeatEvent{
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		SeatID:     booking.SeatID,
		SeatNumber: seatNumber,
		Date:       booking.Date.Format(domain.DateFormat),
		Status:     string(booking.Status),
		OccurredAt: at.UTC().Format(time.RFC3339),
	}
}

// RoutingKey routing key для статуса брони
func RoutingKey(status domain.BookingStatus) string {
	switch status {
	case domain.StatusBlocked:
		return RoutingSeatBlocked
	case domain.StatusVacated:
		return RoutingSeatVacated
	default:
		return RoutingSeatBooked
	}
}
