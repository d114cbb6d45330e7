package domain

// Machine-readable rejection codes returned to clients
const (
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeForbidden       = "FORBIDDEN"
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeConflict        = "CONFLICT"
	CodeInternal        = "INTERNAL_ERROR"
	CodeWeekendBlocked  = "WEEKEND_BLOCKED"
	CodeHolidayBlocked  = "HOLIDAY_BLOCKED"
	CodeNotBatchDay     = "NOT_BATCH_DAY"
	CodeAlreadyBooked   = "ALREADY_BOOKED"
	CodeSeatsFull       = "SEATS_FULL"
	CodeTooEarly        = "TOO_EARLY"
	CodeNoAvailableDay  = "NO_AVAILABLE_DAY"
	CodeNoActiveBooking = "NO_ACTIVE_BOOKING"
	CodePastDate        = "PAST_DATE"

	// ResultOK outcome label for successful ledger operations
	ResultOK = "ok"
)
