package models

import (
	"errors"
	"time"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	"github.com/m04kA/MCS-BookingService/pkg/ptr"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену записи
type CancelBookingRequest struct {
	ActorID            string `json:"actorId"` // идентификатор сотрудника, выполняющего отмену
	ByPatient          bool   `json:"byPatient"`
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	ActorID string `json:"actorId"`
	Status  string `json:"status"`
}

// GetClinicBookingsRequest запрос на получение записей клиники
type GetClinicBookingsRequest struct {
	ClinicID        int64
	PractitionerID  *string
	PatientID       *string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *GetClinicBookingsRequest) ToDomainFilter() (domain.ClinicBookingsFilter, error) {
	filter := domain.ClinicBookingsFilter{
		ClinicID:        r.ClinicID,
		PractitionerID:  r.PractitionerID,
		PatientID:       r.PatientID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return domain.ClinicBookingsFilter{}, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse представление записи для API
type BookingResponse struct {
	ID             int64   `json:"id"`
	ClinicID       int64   `json:"clinicId"`
	PractitionerID string  `json:"practitionerId"`
	PatientID      string  `json:"patientId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Sex            string  `json:"sex"`
	DateOfBirth    string  `json:"dateOfBirth"`
	AgeAtBooking   string  `json:"ageAtBooking"`
	Phone          string  `json:"phone"`
	MedicalHistory *string `json:"medicalHistory,omitempty"`
	BookingDate    string  `json:"bookingDate"`
	StartTime      string  `json:"startTime"`
	OrderNumber    int     `json:"orderNumber"`
	Status         string  `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// BookingListResponse список записей
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
	Total    int                `json:"total"`
}

// FromDomainBooking конвертирует domain запись в API представление
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		ClinicID:           b.ClinicID,
		PractitionerID:     b.PractitionerID,
		PatientID:          b.PatientID,
		FirstName:          b.FirstName,
		LastName:           b.LastName,
		Sex:                b.Sex,
		DateOfBirth:        b.DateOfBirth.Format(domain.DateFormat),
		AgeAtBooking:       b.AgeAtBooking,
		Phone:              b.Phone,
		MedicalHistory:     b.MedicalHistory,
		BookingDate:        b.BookingDate.Format(domain.DateFormat),
		StartTime:          b.StartTime.String(),
		OrderNumber:        b.OrderNumber,
		Status:             string(b.Status),
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          b.UpdatedAt.Format(time.RFC3339),
	}

	if b.CancelledAt != nil {
		resp.CancelledAt = ptr.Ptr(b.CancelledAt.Format(time.RFC3339))
	}

	return resp
}

// FromDomainBookingList конвертирует список domain записей
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		result[i] = FromDomainBooking(b)
	}
	return &BookingListResponse{
		Bookings: result,
		Total:    len(result),
	}
}

// ToDomainBookingStatus валидирует и конвертирует строковый статус
func ToDomainBookingStatus(s string) (domain.BookingStatus, error) {
	status := domain.BookingStatus(s)
	switch status {
	case domain.StatusPendingApproval,
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelledByPatient,
		domain.StatusCancelledByClinic,
		domain.StatusNoShow,
		domain.StatusExpired:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
