package schedule

import (
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
)

var (
	firstHalf  = []time.Weekday{time.Monday, time.Tuesday, time.Wednesday}
	secondHalf = []time.Weekday{time.Thursday, time.Friday}
)

// rotation designated weekdays per batch and week parity
var rotation = map[domain.Batch]map[WeekParity][]time.Weekday{
	domain.BatchA: {WeekOne: firstHalf, WeekTwo: secondHalf},
	domain.BatchB: {WeekOne: secondHalf, WeekTwo: firstHalf},
}

// DesignatedDays returns the designated weekdays of batch in a week of the given parity
func DesignatedDays(batch domain.Batch, parity WeekParity) []time.Weekday {
	days := rotation[batch][parity]
	out := make([]time.Weekday, len(days))
	copy(out, days)
	return out
}

// IsEligible reports whether batch may book a seat on date
// Weekends and unknown batches are never eligible
func IsEligible(batch domain.Batch, date time.Time) bool {
	if IsWeekend(date) {
		return false
	}
	for _, wd := range rotation[batch][Parity(date)] {
		if wd == date.Weekday() {
			return true
		}
	}
	return false
}
