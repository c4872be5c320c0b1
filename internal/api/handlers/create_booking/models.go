package create_booking

import (
	"time"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	createBooking "github.com/m04kA/MCS-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/MCS-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PractitionerID string  `json:"practitionerId"`
	PatientID      string  `json:"patientId"`
	FirstName      string  `json:"firstName"`
	LastName       string  `json:"lastName"`
	Sex            string  `json:"sex"`
	DateOfBirth    string  `json:"dateOfBirth"` // "1990-03-15"
	Phone          string  `json:"phone"`
	MedicalHistory *string `json:"medicalHistory,omitempty"`
	BookingDate    string  `json:"bookingDate"` // "2026-09-15"
	StartTime      string  `json:"startTime"`   // "10:00"
}

// BookingResponse HTTP response model
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
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Дата рождения передается строкой как есть: её разбор - часть
// бизнес-валидации, а не HTTP-слоя.
func (r *CreateBookingRequest) ToUseCaseRequest(clinicID int64) (*createBooking.Request, error) {
	// Парсим дату записи
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	// Парсим время слота
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		ClinicID:       clinicID,
		PractitionerID: r.PractitionerID,
		PatientID:      r.PatientID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Sex:            r.Sex,
		DateOfBirth:    r.DateOfBirth,
		Phone:          r.Phone,
		MedicalHistory: r.MedicalHistory,
		Date:           bookingDate,
		StartTime:      startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		ClinicID:       resp.ClinicID,
		PractitionerID: resp.PractitionerID,
		PatientID:      resp.PatientID,
		FirstName:      resp.FirstName,
		LastName:       resp.LastName,
		Sex:            resp.Sex,
		DateOfBirth:    resp.DateOfBirth.Format(domain.DateFormat),
		AgeAtBooking:   resp.AgeAtBooking,
		Phone:          resp.Phone,
		MedicalHistory: resp.MedicalHistory,
		BookingDate:    resp.BookingDate.Format(domain.DateFormat),
		StartTime:      resp.StartTime.String(),
		OrderNumber:    resp.OrderNumber,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
