package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	"github.com/m04kA/MCS-BookingService/pkg/types"
)

// validateRequiredFields проверяет, что все обязательные поля заполнены.
// Первый шаг валидации: порядок проверок фиксирован, потому что он
// определяет, какую ошибку увидит пользователь.
func validateRequiredFields(req *Request) error {
	missing := make([]string, 0)

	if strings.TrimSpace(req.PatientID) == "" {
		missing = append(missing, "patientId")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(req.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(req.Sex) == "" {
		missing = append(missing, "sex")
	}
	if strings.TrimSpace(req.DateOfBirth) == "" {
		missing = append(missing, "dateOfBirth")
	}
	if strings.TrimSpace(req.Phone) == "" {
		missing = append(missing, "phone")
	}
	if req.Date.IsZero() {
		missing = append(missing, "date")
	}
	if req.StartTime.IsZero() {
		missing = append(missing, "startTime")
	}
	if strings.TrimSpace(req.PractitionerID) == "" {
		missing = append(missing, "practitionerId")
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingFields, strings.Join(missing, ", "))
	}

	if req.ClinicID <= 0 {
		return fmt.Errorf("%w: clinicID must be positive", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validatePhone проверяет формат телефона
func validatePhone(phone string) error {
	if !domain.PhonePattern.MatchString(phone) {
		return fmt.Errorf("%w: %q", ErrInvalidPhone, phone)
	}
	return nil
}

// parseBirthDate разбирает дату рождения и проверяет, что она не в будущем
func parseBirthDate(raw string, now time.Time) (time.Time, error) {
	dob, err := time.Parse(domain.DateFormat, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q does not parse as %s", ErrInvalidBirthDate, raw, domain.DateFormat)
	}

	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dob.After(nowDay) {
		return time.Time{}, fmt.Errorf("%w: birth date %s is in the future", ErrInvalidBirthDate, raw)
	}

	return dob, nil
}

// validateSlotOnGrid проверяет, что метка времени принадлежит сетке врача,
// и возвращает её порядковый номер
func validateSlotOnGrid(startTime types.TimeString, schedule *domain.PractitionerSchedule) (int, error) {
	orderNumber, ok := domain.OrderNumber(
		startTime,
		schedule.DayStartTime,
		schedule.DayEndTime,
		schedule.SlotIntervalMinutes,
	)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a slot of grid %s-%s/%d",
			ErrInvalidTimeSlot, startTime, schedule.DayStartTime, schedule.DayEndTime, schedule.SlotIntervalMinutes)
	}
	return orderNumber, nil
}

// findSlotConflict ищет активную запись, занимающую тот же слот
func findSlotConflict(bookings []*domain.Booking, startTime types.TimeString) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.StartTime == startTime {
			return b
		}
	}
	return nil
}

// findPatientDuplicate ищет активную запись того же пациента к тому же врачу
// на тот же день - один пациент, один врач, одна запись в день
func findPatientDuplicate(bookings []*domain.Booking, patientID string) *domain.Booking {
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.PatientID == patientID {
			return b
		}
	}
	return nil
}
