package update_schedule

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/staff/models"
)

type StaffService interface {
	SetSchedule(ctx context.Context, staffID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
