package schedule

import "time"

// WeekParity position of an ISO week in the two-week rotation
type WeekParity int

const (
	// WeekOne odd ISO weeks
	WeekOne WeekParity = 1
	// WeekTwo even ISO weeks
	WeekTwo WeekParity = 2
)

func (p WeekParity) String() string {
	if p == WeekOne {
		return "WEEK_1"
	}
	return "WEEK_2"
}

// IsWeekend reports whether date falls on Saturday or Sunday
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// ISOWeek returns the ISO-8601 week number of date
func ISOWeek(date time.Time) int {
	_, week := date.ISOWeek()
	return week
}

// ISOWeekYear returns the ISO-8601 week-year and week number of date
func ISOWeekYear(date time.Time) (year, week int) {
	return date.ISOWeek()
}

// Parity returns WeekOne for odd ISO weeks and WeekTwo for even ones
func Parity(date time.Time) WeekParity {
	if ISOWeek(date)%2 == 1 {
		return WeekOne
	}
	return WeekTwo
}

// IsAfterCutoff reports whether now has reached cutoffHour in now's location
func IsAfterCutoff(now time.Time, cutoffHour int) bool {
	return now.Hour() >= cutoffHour
}

// NextWorkingDay returns the first non-weekend day strictly after date
func NextWorkingDay(date time.Time) time.Time {
	next := date.AddDate(0, 0, 1)
	for IsWeekend(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// NormalizeDate returns the calendar day of t at UTC midnight
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekDates returns Monday..Friday of the ISO week containing date
func WeekDates(date time.Time) []time.Time {
	day := NormalizeDate(date)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	monday := day.AddDate(0, 0, -offset)

	dates := make([]time.Time, 0, 5)
	for i := 0; i < 5; i++ {
		dates = append(dates, monday.AddDate(0, 0, i))
	}
	return dates
}
