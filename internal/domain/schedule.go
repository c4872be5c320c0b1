package domain

import (
	"time"

	"github.com/m04kA/MCS-BookingService/pkg/types"
)

// PractitionerSchedule represents the daily booking grid configuration.
// Supports two levels:
// 1. Practitioner-specific (clinic_id, practitioner_id)
// 2. Clinic-wide default (clinic_id, NULL)
type PractitionerSchedule struct {
	ID                  int64
	ClinicID            int64
	PractitionerID      *string // NULL = default for the whole clinic
	DayStartTime        types.TimeString
	DayEndTime          types.TimeString
	SlotIntervalMinutes int
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsClinicDefault returns true if this row is the clinic-wide fallback
func (s *PractitionerSchedule) IsClinicDefault() bool {
	return s.PractitionerID == nil
}

// DefaultSchedule returns the built-in grid configuration applied when
// neither a practitioner-specific nor a clinic-wide row exists
func DefaultSchedule(clinicID int64) *PractitionerSchedule {
	return &PractitionerSchedule{
		ClinicID:            clinicID,
		DayStartTime:        types.TimeString(DefaultDayStartTime),
		DayEndTime:          types.TimeString(DefaultDayEndTime),
		SlotIntervalMinutes: DefaultSlotIntervalMinutes,
	}
}
