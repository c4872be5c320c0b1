package get_available_slots

import (
	"context"

	"github.com/m04kA/MCS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория записей на прием
type BookingRepository interface {
	// GetByClinicWithFilter получает записи клиники на конкретную дату и врача
	GetByClinicWithFilter(ctx context.Context, filter domain.ClinicBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория конфигураций сетки приема
type ScheduleRepository interface {
	// GetScheduleWithHierarchy получает конфигурацию с учетом иерархии приоритетов
	GetScheduleWithHierarchy(ctx context.Context, clinicID int64, practitionerID string) (*domain.PractitionerSchedule, error)
}

// PeriodRepository интерфейс репозитория периодов блокировки
type PeriodRepository interface {
	ListByClinic(ctx context.Context, clinicID int64) ([]*domain.DisabledPeriod, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
