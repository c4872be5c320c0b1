package domain

import (
	"time"

	"github.com/m04kA/MCS-BookingService/pkg/types"
)

// BookingStatus represents the status of an appointment booking
type BookingStatus string

const (
	// StatusPendingApproval is the only status patient self-service produces;
	// every new booking awaits staff confirmation
	StatusPendingApproval    BookingStatus = "pending_approval"
	StatusConfirmed          BookingStatus = "confirmed"
	StatusCompleted          BookingStatus = "completed"
	StatusCancelledByPatient BookingStatus = "cancelled_by_patient"
	StatusCancelledByClinic  BookingStatus = "cancelled_by_clinic"
	StatusNoShow             BookingStatus = "no_show"
	StatusExpired            BookingStatus = "expired"
)

// Booking represents one reserved appointment slot in a clinic
type Booking struct {
	ID             int64
	ClinicID       int64  // тенант - клиника, которой принадлежит запись
	PractitionerID string // стабильный идентификатор врача (email)

	PatientID      string // стабильный идентификатор пациента
	FirstName      string
	LastName       string
	Sex            string
	DateOfBirth    time.Time
	AgeAtBooking   string // вычисляется при создании, только для отображения ("34 ans 2 mois")
	Phone          string
	MedicalHistory *string

	BookingDate time.Time
	StartTime   types.TimeString
	OrderNumber int // порядковый номер слота в сетке дня, только для отображения
	Status      BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelledByPatient &&
		b.Status != StatusCancelledByClinic &&
		b.Status != StatusNoShow &&
		b.Status != StatusExpired
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPendingApproval || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelledByPatient || b.Status == StatusCancelledByClinic
}

// IsFinished returns true if the booking reached a terminal state
func (b *Booking) IsFinished() bool {
	return b.Status == StatusCompleted || b.Status == StatusNoShow || b.Status == StatusExpired
}

// ClinicBookingsFilter фильтр для выборки записей клиники
type ClinicBookingsFilter struct {
	ClinicID        int64          // Обязательный параметр
	PractitionerID  *string        // Фильтр по врачу (опционально)
	PatientID       *string        // Фильтр по пациенту (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отмененные/неявившиеся/истекшие записи
}
