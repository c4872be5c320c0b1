package get_schedule

import (
	"context"

	"github.com/m04kA/MCS-BookingService/internal/service/schedule"
)

type ScheduleService interface {
	Get(ctx context.Context, clinicID int64, practitionerID string) (*schedule.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
