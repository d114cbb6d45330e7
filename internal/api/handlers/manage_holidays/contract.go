package manage_holidays

import (
	"context"

	"github.com/vinaywa/Seat-Booking-System/internal/service/holidays/models"
)

type HolidayService interface {
	Create(ctx context.Context, callerID int64, req *models.CreateHolidayRequest) (*models.HolidayResponse, error)
	List(ctx context.Context) (*models.HolidayListResponse, error)
	Delete(ctx context.Context, callerID, holidayID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
