package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/MCS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория записей на прием
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByClinicWithFilter(ctx context.Context, filter domain.ClinicBookingsFilter) ([]*domain.Booking, error)
}

// ScheduleRepository интерфейс репозитория конфигураций сетки приема
type ScheduleRepository interface {
	GetScheduleWithHierarchy(ctx context.Context, clinicID int64, practitionerID string) (*domain.PractitionerSchedule, error)
}

// PeriodRepository интерфейс репозитория периодов блокировки
type PeriodRepository interface {
	ListByClinic(ctx context.Context, clinicID int64) ([]*domain.DisabledPeriod, error)
}

// PatientRepository интерфейс репозитория карточек пациентов
type PatientRepository interface {
	GetByClinicAndPatientID(ctx context.Context, clinicID int64, patientID string) (*domain.Patient, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
