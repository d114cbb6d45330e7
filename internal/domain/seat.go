package domain

import (
	"fmt"
	"strings"
)

// SeatClass category of a seat
type SeatClass string

const (
	// SeatDesignated seat reserved for the batch on its designated days
	SeatDesignated SeatClass = "DESIGNATED"
	// SeatFloater seat open to anyone on non-designated days
	SeatFloater SeatClass = "FLOATER"
)

// ParseSeatClass parses a seat class; FIXED is accepted as an alias of DESIGNATED
func ParseSeatClass(s string) (SeatClass, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DESIGNATED", "FIXED":
		return SeatDesignated, nil
	case "FLOATER":
		return SeatFloater, nil
	default:
		return "", fmt.Errorf("%w: seat class %q", ErrInvalidEnum, s)
	}
}

// Seat represents a physical desk
type Seat struct {
	ID       int64
	Number   int
	Class    SeatClass
	IsActive bool // false = under maintenance
}
