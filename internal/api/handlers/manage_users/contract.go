package manage_users

import (
	"context"

	"github.com/vinaywa/Seat-Booking-System/internal/service/users/models"
)

type UserService interface {
	Create(ctx context.Context, callerID int64, req *models.CreateUserRequest) (*models.UserResponse, error)
	Get(ctx context.Context, userID int64) (*models.UserResponse, error)
	List(ctx context.Context, callerID int64) (*models.UserListResponse, error)
	Update(ctx context.Context, callerID, userID int64, req *models.UpdateUserRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
