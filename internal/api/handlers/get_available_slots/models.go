package get_available_slots

import (
	"github.com/m04kA/MCS-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/MCS-BookingService/internal/usecase/get_available_slots"
)

// SlotResponse HTTP модель одного слота сетки
type SlotResponse struct {
	StartTime   string `json:"startTime"`
	OrderNumber int    `json:"orderNumber"`
	Reserved    bool   `json:"reserved"`
}

// DaySlotsResponse HTTP модель сетки дня
type DaySlotsResponse struct {
	Date           string         `json:"date"`
	ClinicID       int64          `json:"clinicId"`
	PractitionerID string         `json:"practitionerId"`
	DayBlocked     bool           `json:"dayBlocked"`
	BlockReason    *string        `json:"blockReason,omitempty"`
	Slots          []SlotResponse `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *DaySlotsResponse {
	slots := make([]SlotResponse, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:   s.StartTime.String(),
			OrderNumber: s.OrderNumber,
			Reserved:    s.Reserved,
		}
	}

	return &DaySlotsResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		ClinicID:       resp.ClinicID,
		PractitionerID: resp.PractitionerID,
		DayBlocked:     resp.DayBlocked,
		BlockReason:    resp.BlockReason,
		Slots:          slots,
	}
}
