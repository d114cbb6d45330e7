package domain

import "errors"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Booking policy defaults
const (
	DefaultCutoffHour = 15
	// HolidaySkipLimit bound on consecutive holidays skipped when blocking
	HolidaySkipLimit = 10
)

// Grid cell states, in precedence order
const (
	CellMaintenance    = "MAINTENANCE"
	CellMine           = "MINE"
	CellTaken          = "TAKEN"
	CellWeekend        = "WEEKEND"
	CellHoliday        = "HOLIDAY"
	CellDesignatedOnly = "DESIGNATED_ONLY"
	CellFloaterOnly    = "FLOATER_ONLY"
	CellAvailable      = "AVAILABLE"
)

// ErrInvalidEnum returned by enum parsers
var ErrInvalidEnum = errors.New("domain: invalid enum value")
