package add_disabled_period

import (
	"context"

	"github.com/m04kA/MCS-BookingService/internal/service/periods"
)

type PeriodService interface {
	Add(ctx context.Context, req *periods.AddPeriodRequest) (*periods.PeriodResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
