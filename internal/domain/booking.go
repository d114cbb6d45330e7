package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingStatus represents the status of a seat booking
type BookingStatus string

const (
	// StatusBooked seat reserved for a chosen date
	StatusBooked BookingStatus = "BOOKED"
	// StatusBlocked seat reserved for the next working day after the cutoff
	StatusBlocked BookingStatus = "BLOCKED"
	// StatusVacated booking released; kept as history
	StatusVacated BookingStatus = "VACATED"
)

// ActiveStatuses statuses that hold a seat
var ActiveStatuses = []BookingStatus{StatusBooked, StatusBlocked}

// ParseBookingStatus parses a booking status
func ParseBookingStatus(s string) (BookingStatus, error) {
	switch BookingStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusBooked:
		return StatusBooked, nil
	case StatusBlocked:
		return StatusBlocked, nil
	case StatusVacated:
		return StatusVacated, nil
	default:
		return "", fmt.Errorf("%w: booking status %q", ErrInvalidEnum, s)
	}
}

// IsActive reports whether the status holds a seat
func (s BookingStatus) IsActive() bool {
	return s == StatusBooked || s == StatusBlocked
}

// Booking represents a seat reservation of one user for one calendar day
type Booking struct {
	ID        int64
	UserID    int64
	SeatID    int64
	Date      time.Time // UTC midnight
	Status    BookingStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking currently holds its seat
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// BookingDetails booking joined with its seat and user
type BookingDetails struct {
	Booking
	SeatNumber int
	SeatClass  SeatClass
	UserName   string
	UserEmail  string
	UserBatch  Batch
}
