package periods

import (
	"time"

	"github.com/m04kA/MCS-BookingService/internal/domain"
)

// AddPeriodRequest запрос на добавление периода блокировки
type AddPeriodRequest struct {
	ClinicID  int64
	StartDate time.Time
	EndDate   time.Time
	Reason    string
}

// PeriodResponse представление периода блокировки для API
type PeriodResponse struct {
	ID        string `json:"id"` // public_id (uuid)
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Reason    string `json:"reason"`
	CreatedAt string `json:"createdAt"`
}

// PeriodListResponse список периодов блокировки в порядке добавления
type PeriodListResponse struct {
	Periods []*PeriodResponse `json:"periods"`
	Total   int               `json:"total"`
}

// FromDomainPeriod конвертирует domain период в API представление
func FromDomainPeriod(p *domain.DisabledPeriod) *PeriodResponse {
	return &PeriodResponse{
		ID:        p.PublicID.String(),
		StartDate: p.StartDate.Format(domain.DateFormat),
		EndDate:   p.EndDate.Format(domain.DateFormat),
		Reason:    p.Reason,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainPeriodList конвертирует список domain периодов
func FromDomainPeriodList(periods []*domain.DisabledPeriod) *PeriodListResponse {
	result := make([]*PeriodResponse, len(periods))
	for i, p := range periods {
		result[i] = FromDomainPeriod(p)
	}
	return &PeriodListResponse{
		Periods: result,
		Total:   len(result),
	}
}
