package list_disabled_periods

import (
	"context"

	"github.com/m04kA/MCS-BookingService/internal/service/periods"
)

type PeriodService interface {
	List(ctx context.Context, clinicID int64) (*periods.PeriodListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
