package schedule

import (
	"github.com/m04kA/MCS-BookingService/internal/domain"
	"github.com/m04kA/MCS-BookingService/pkg/types"
)

// UpsertScheduleRequest запрос на создание/обновление конфигурации сетки.
// PractitionerID == nil означает дефолтную конфигурацию клиники.
type UpsertScheduleRequest struct {
	ClinicID            int64
	PractitionerID      *string
	DayStartTime        types.TimeString
	DayEndTime          types.TimeString
	SlotIntervalMinutes int
}

// ScheduleResponse представление конфигурации сетки для API
type ScheduleResponse struct {
	ClinicID            int64   `json:"clinicId"`
	PractitionerID      *string `json:"practitionerId,omitempty"`
	DayStartTime        string  `json:"dayStartTime"`
	DayEndTime          string  `json:"dayEndTime"`
	SlotIntervalMinutes int     `json:"slotIntervalMinutes"`
	IsDefault           bool    `json:"isDefault"`
}

// FromDomainSchedule конвертирует domain конфигурацию в API представление
func FromDomainSchedule(s *domain.PractitionerSchedule) *ScheduleResponse {
	return &ScheduleResponse{
		ClinicID:            s.ClinicID,
		PractitionerID:      s.PractitionerID,
		DayStartTime:        s.DayStartTime.String(),
		DayEndTime:          s.DayEndTime.String(),
		SlotIntervalMinutes: s.SlotIntervalMinutes,
		IsDefault:           s.IsClinicDefault(),
	}
}
