package update_schedule

import (
	"context"

	"github.com/m04kA/MCS-BookingService/internal/service/schedule"
)

type ScheduleService interface {
	Upsert(ctx context.Context, req *schedule.UpsertScheduleRequest) (*schedule.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
