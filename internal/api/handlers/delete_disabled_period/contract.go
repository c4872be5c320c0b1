package delete_disabled_period

import (
	"context"

	"github.com/google/uuid"
)

type PeriodService interface {
	Delete(ctx context.Context, clinicID int64, publicID uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
