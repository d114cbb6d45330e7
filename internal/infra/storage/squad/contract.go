package squad

import "github.com/vinaywa/Seat-Booking-System/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
