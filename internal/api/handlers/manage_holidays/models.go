package manage_holidays

import (
	"github.com/vinaywa/Seat-Booking-System/internal/api/handlers"
	"github.com/vinaywa/Seat-Booking-System/internal/service/holidays/models"
)

// CreateHolidayRequest HTTP request model
type CreateHolidayRequest struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
}

func (r *CreateHolidayRequest) ToServiceRequest() (*models.CreateHolidayRequest, error) {
	date, err := handlers.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	return &models.CreateHolidayRequest{Date: date, Reason: r.Reason}, nil
}
