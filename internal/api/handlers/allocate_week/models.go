package allocate_week

import (
	"strings"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	allocateWeek "github.com/vinaywa/Seat-Booking-System/internal/usecase/allocate_week"
)

// AllocateWeekRequest HTTP request model
// date - любой день нужной недели, пустое значение = текущая неделя
type AllocateWeekRequest struct {
	Date string `json:"date,omitempty"`
}

type SquadAllocationResponse struct {
	AllocationID int64   `json:"allocationId"`
	SquadID      int64   `json:"squadId"`
	SquadName    string  `json:"squadName"`
	SeatIDs      []int64 `json:"seatIds"`
	SeatNumbers  []int   `json:"seatNumbers"`
}

type AllocateWeekResponse struct {
	Week          int                       `json:"week"`
	Year          int                       `json:"year"`
	SeatsPerSquad int                       `json:"seatsPerSquad"`
	Unassigned    []int                     `json:"unassigned"`
	Allocations   []SquadAllocationResponse `json:"allocations"`
}

func (r *AllocateWeekRequest) ToUseCaseRequest(callerID int64) (*allocateWeek.Request, error) {
	var date time.Time
	if strings.TrimSpace(r.Date) != "" {
		parsed, err := handlers.ParseDate(r.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}
	return &allocateWeek.Request{CallerID: callerID, Date: date}, nil
}

func FromUseCaseResponse(resp *allocateWeek.Response) *AllocateWeekResponse {
	allocations := make([]SquadAllocationResponse, 0, len(resp.Allocations))
	for _, a := range resp.Allocations {
		allocations = append(allocations, SquadAllocationResponse{
			AllocationID: a.AllocationID,
			SquadID:      a.SquadID,
			SquadName:    a.SquadName,
			SeatIDs:      a.SeatIDs,
			SeatNumbers:  a.SeatNumbers,
		})
	}
	unassigned := resp.Unassigned
	if unassigned == nil {
		unassigned = []int{}
	}
	return &AllocateWeekResponse{
		Week:          resp.Week,
		Year:          resp.Year,
		SeatsPerSquad: resp.SeatsPerSquad,
		Unassigned:    unassigned,
		Allocations:   allocations,
	}
}
