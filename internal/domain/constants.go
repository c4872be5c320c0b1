package domain

import "regexp"

// Default schedule values used when a practitioner has no stored configuration
const (
	DefaultDayStartTime        = "09:00"
	DefaultDayEndTime          = "17:00"
	DefaultSlotIntervalMinutes = 30
)

// Business validation constants
const (
	MinSlotIntervalMinutes = 5
	MaxSlotIntervalMinutes = 480 // 8 hours

	MaxNameLength               = 100
	MaxReasonLength             = 500
	MaxMedicalHistoryLength     = 2000
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// PhonePattern валидация телефона: ведущий "+" или "0", затем 6-14 цифр
var PhonePattern = regexp.MustCompile(`^(\+|0)[0-9]{6,14}$`)

// InactiveStatuses список статусов, при которых запись не занимает слот.
// Используется при подсчёте занятости сетки
var InactiveStatuses = []BookingStatus{
	StatusCancelledByPatient,
	StatusCancelledByClinic,
	StatusNoShow,
	StatusExpired,
}

// ActiveStatuses список статусов, при которых запись занимает слот
var ActiveStatuses = []BookingStatus{
	StatusPendingApproval,
	StatusConfirmed,
	StatusCompleted,
}
