package periods

import (
	"context"

	"github.com/google/uuid"
	"github.com/m04kA/MCS-BookingService/internal/domain"
)

// PeriodRepository интерфейс репозитория периодов блокировки
type PeriodRepository interface {
	Create(ctx context.Context, period *domain.DisabledPeriod) (*domain.DisabledPeriod, error)
	ListByClinic(ctx context.Context, clinicID int64) ([]*domain.DisabledPeriod, error)
	DeleteByPublicID(ctx context.Context, clinicID int64, publicID uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
