package get_seat_grid

import (
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	"github.com/vinaywa/Seat-Booking-System/internal/schedule"
)

type seatDay struct {
	seatID int64
	date   time.Time
}

// cellState вычисляет состояние ячейки в порядке приоритета:
// MAINTENANCE, MINE, TAKEN, WEEKEND, HOLIDAY, DESIGNATED_ONLY/FLOATER_ONLY, AVAILABLE
func cellState(viewer *domain.User, seat *domain.Seat, date time.Time, booking *domain.Booking, holiday bool) Cell {
	cell := Cell{Date: date}

	switch {
	case !seat.IsActive:
		cell.State = domain.CellMaintenance
	case booking != nil && booking.UserID == viewer.ID:
		cell.State = domain.CellMine
	case booking != nil:
		cell.State = domain.CellTaken
	case schedule.IsWeekend(date):
		cell.State = domain.CellWeekend
	case holiday:
		cell.State = domain.CellHoliday
	default:
		designatedDay := schedule.IsEligible(viewer.Batch, date)
		switch {
		case seat.Class == domain.SeatDesignated && !designatedDay:
			cell.State = domain.CellDesignatedOnly
		case seat.Class == domain.SeatFloater && designatedDay:
			cell.State = domain.CellFloaterOnly
		default:
			cell.State = domain.CellAvailable
			cell.Bookable = true
		}
	}

	if booking != nil && (cell.State == domain.CellMine || cell.State == domain.CellTaken) {
		id := booking.ID
		cell.BookingID = &id
	}
	return cell
}
