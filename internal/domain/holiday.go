package domain

import "time"

// Holiday office-wide non-working date
type Holiday struct {
	ID     int64
	Date   time.Time // UTC midnight
	Reason string
}
