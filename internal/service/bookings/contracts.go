package bookings

import (
	"context"
	"time"

	"github.com/m04kA/MCS-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория записей на прием
type BookingRepository interface {
	GetByID(ctx context.Context, clinicID, id int64) (*domain.Booking, error)
	GetByClinicWithFilter(ctx context.Context, filter domain.ClinicBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, clinicID, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, clinicID, id int64, status domain.BookingStatus, reason string) error
	ExpireOverduePending(ctx context.Context, before time.Time) (int64, error)
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
