package get_seat_grid

import (
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	getSeatGrid "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_seat_grid"
)

type CellResponse struct {
	Date      string `json:"date"`
	State     string `json:"state"`
	BookingID *int64 `json:"bookingId,omitempty"`
	Bookable  bool   `json:"bookable"`
}

type RowResponse struct {
	SeatID     int64          `json:"seatId"`
	SeatNumber int            `json:"seatNumber"`
	SeatClass  string         `json:"seatClass"`
	IsActive   bool           `json:"isActive"`
	Cells      []CellResponse `json:"cells"`
}

type GridResponse struct {
	Week           int           `json:"week"`
	Year           int           `json:"year"`
	Parity         string        `json:"parity"`
	Batch          string        `json:"batch"`
	Dates          []string      `json:"dates"`
	DesignatedDays []string      `json:"designatedDays"`
	Rows           []RowResponse `json:"rows"`
}

func FromUseCaseResponse(resp *getSeatGrid.Response) *GridResponse {
	rows := make([]RowResponse, 0, len(resp.Rows))
	for _, row := range resp.Rows {
		cells := make([]CellResponse, 0, len(row.Cells))
		for _, c := range row.Cells {
			cells = append(cells, CellResponse{
				Date:      c.Date.Format(domain.DateFormat),
				State:     c.State,
				BookingID: c.BookingID,
				Bookable:  c.Bookable,
			})
		}
		rows = append(rows, RowResponse{
			SeatID:     row.SeatID,
			SeatNumber: row.SeatNumber,
			SeatClass:  row.SeatClass,
			IsActive:   row.IsActive,
			Cells:      cells,
		})
	}

	return &GridResponse{
		Week:           resp.Week,
		Year:           resp.Year,
		Parity:         resp.Parity,
		Batch:          resp.Batch,
		Dates:          formatDates(resp.Dates),
		DesignatedDays: formatDates(resp.DesignatedDays),
		Rows:           rows,
	}
}

func formatDates(dates []time.Time) []string {
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		out = append(out, d.Format(domain.DateFormat))
	}
	return out
}
