package domain

import "time"

// Allocation seats assigned to a squad for one ISO week
type Allocation struct {
	ID        int64
	SquadID   int64
	Week      int // ISO week number
	Year      int // ISO week-year
	SeatIDs   []int64
	UpdatedAt time.Time
}
