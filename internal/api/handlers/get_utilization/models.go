package get_utilization

import (
	"github.com/vinaywa/Seat-Booking-System/internal/domain"
	getUtilization "github.com/vinaywa/Seat-Booking-System/internal/usecase/get_utilization"
)

type UtilizationResponse struct {
	Date               string `json:"date"`
	TotalSeats         int    `json:"totalSeats"`
	TotalBooked        int    `json:"totalBooked"`
	UtilizationPercent string `json:"utilizationPercent"`
}

func FromUseCaseResponse(resp *getUtilization.Response) *UtilizationResponse {
	return &UtilizationResponse{
		Date:               resp.Date.Format(domain.DateFormat),
		TotalSeats:         resp.TotalSeats,
		TotalBooked:        resp.TotalBooked,
		UtilizationPercent: resp.UtilizationPercent,
	}
}
