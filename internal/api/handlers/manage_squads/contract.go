package manage_squads

import (
	"context"
	"time"

	"github.com/vinaywa/Seat-Booking-System/internal/service/squads/models"
)

type SquadService interface {
	Create(ctx context.Context, callerID int64, req *models.CreateSquadRequest) (*models.SquadResponse, error)
	List(ctx context.Context) (*models.SquadListResponse, error)
	Get(ctx context.Context, squadID int64) (*models.SquadResponse, error)
	GetAllocations(ctx context.Context, date time.Time, squadID *int64) (*models.WeekAllocationsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
