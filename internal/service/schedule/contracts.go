package schedule

import (
	"context"

	"github.com/m04kA/MCS-BookingService/internal/domain"
)

// ScheduleRepository интерфейс репозитория конфигураций сетки приема
type ScheduleRepository interface {
	GetScheduleWithHierarchy(ctx context.Context, clinicID int64, practitionerID string) (*domain.PractitionerSchedule, error)
	Upsert(ctx context.Context, schedule *domain.PractitionerSchedule) (*domain.PractitionerSchedule, error)
	Delete(ctx context.Context, clinicID int64, practitionerID *string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
