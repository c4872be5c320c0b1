package create_booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	"github.com/m04kA/MCS-BookingService/pkg/types"
)

func validRequest() *Request {
	return &Request{
		ClinicID:       10,
		PractitionerID: "dr-petit",
		PatientID:      "patient-42",
		FirstName:      "Amine",
		LastName:       "Benali",
		Sex:            "M",
		DateOfBirth:    "1990-03-15",
		Phone:          "+212612345678",
		Date:           time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
	}
}

func TestValidateRequiredFields(t *testing.T) {
	require.NoError(t, validateRequiredFields(validRequest()))

	mutations := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing patientId", func(r *Request) { r.PatientID = "" }},
		{"missing firstName", func(r *Request) { r.FirstName = "  " }},
		{"missing lastName", func(r *Request) { r.LastName = "" }},
		{"missing sex", func(r *Request) { r.Sex = "" }},
		{"missing dateOfBirth", func(r *Request) { r.DateOfBirth = "" }},
		{"missing phone", func(r *Request) { r.Phone = "" }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing startTime", func(r *Request) { r.StartTime = "" }},
		{"missing practitionerId", func(r *Request) { r.PractitionerID = "" }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(req)
			assert.ErrorIs(t, validateRequiredFields(req), ErrMissingFields)
		})
	}

	req := validRequest()
	req.ClinicID = 0
	assert.ErrorIs(t, validateRequiredFields(req), ErrInvalidInput)

	req = validRequest()
	req.StartTime = "10h00"
	assert.ErrorIs(t, validateRequiredFields(req), ErrInvalidInput)
}

func TestValidatePhone(t *testing.T) {
	valid := []string{
		"+212612345678",
		"0612345678",
		"+33123456",
		"012345678901234", // 0 + 14 цифр
	}
	for _, phone := range valid {
		assert.NoError(t, validatePhone(phone), "phone %q", phone)
	}

	invalid := []string{
		"612345678",         // нет префикса
		"+12345",            // меньше 6 цифр
		"+123456789012345",  // больше 14 цифр
		"06 12 34 56 78",    // пробелы
		"+2126-1234-5678",   // дефисы
		"0612345678x",       // мусор в конце
		"++212612345678",    // двойной плюс
	}
	for _, phone := range invalid {
		assert.ErrorIs(t, validatePhone(phone), ErrInvalidPhone, "phone %q", phone)
	}
}

func TestParseBirthDate(t *testing.T) {
	now := time.Date(2026, time.September, 15, 10, 30, 0, 0, time.UTC)

	dob, err := parseBirthDate("1990-03-15", now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC), dob)

	// Сегодняшняя дата рождения допустима
	_, err = parseBirthDate("2026-09-15", now)
	assert.NoError(t, err)

	_, err = parseBirthDate("2026-09-16", now)
	assert.ErrorIs(t, err, ErrInvalidBirthDate)

	_, err = parseBirthDate("15/03/1990", now)
	assert.ErrorIs(t, err, ErrInvalidBirthDate)

	_, err = parseBirthDate("not-a-date", now)
	assert.ErrorIs(t, err, ErrInvalidBirthDate)
}

func TestValidateSlotOnGrid(t *testing.T) {
	schedule := &domain.PractitionerSchedule{
		DayStartTime:        "09:00",
		DayEndTime:          "12:00",
		SlotIntervalMinutes: 30,
	}

	num, err := validateSlotOnGrid("10:30", schedule)
	require.NoError(t, err)
	assert.Equal(t, 4, num)

	for _, label := range []types.TimeString{"12:00", "08:30", "10:10", "11:45"} {
		_, err := validateSlotOnGrid(label, schedule)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, "label %s", label)
	}
}

func TestFindSlotConflictAndDuplicate(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, PatientID: "patient-1", StartTime: "09:00", Status: domain.StatusConfirmed},
		{ID: 2, PatientID: "patient-2", StartTime: "09:30", Status: domain.StatusCancelledByPatient},
	}

	assert.NotNil(t, findSlotConflict(bookings, "09:00"))
	assert.Nil(t, findSlotConflict(bookings, "09:30"), "cancelled booking does not hold the slot")
	assert.Nil(t, findSlotConflict(bookings, "10:00"))

	assert.NotNil(t, findPatientDuplicate(bookings, "patient-1"))
	assert.Nil(t, findPatientDuplicate(bookings, "patient-2"), "cancelled booking is not a duplicate")
	assert.Nil(t, findPatientDuplicate(bookings, "patient-3"))
}
