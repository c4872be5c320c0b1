package periods

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/m04kA/MCS-BookingService/internal/domain"
	periodRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/period"
)

// Service сервис администрирования периодов блокировки записи.
// Периоды действуют на всю клинику независимо от врача; пересечения
// допустимы и не дедуплицируются.
type Service struct {
	periodRepo PeriodRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса периодов блокировки
func NewService(periodRepo PeriodRepository, logger Logger) *Service {
	return &Service{
		periodRepo: periodRepo,
		logger:     logger,
	}
}

// Add добавляет период блокировки
func (s *Service) Add(ctx context.Context, req *AddPeriodRequest) (*PeriodResponse, error) {
	s.logger.Info("AddPeriod: clinic=%d, start=%s, end=%s",
		req.ClinicID, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.ClinicID <= 0 {
		return nil, fmt.Errorf("%w: clinicID must be positive", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.StartDate.After(req.EndDate) {
		s.logger.Warn("AddPeriod: invalid range %s > %s",
			req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: start date %s is after end date %s",
			ErrInvalidRange, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if len(req.Reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	period := &domain.DisabledPeriod{
		ClinicID:  req.ClinicID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Reason:    strings.TrimSpace(req.Reason),
	}

	created, err := s.periodRepo.Create(ctx, period)
	if err != nil {
		s.logger.Error("AddPeriod: repository error for clinic=%d: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("AddPeriod: created period %s for clinic=%d", created.PublicID, req.ClinicID)
	return FromDomainPeriod(created), nil
}

// List получает периоды блокировки клиники в порядке добавления
func (s *Service) List(ctx context.Context, clinicID int64) (*PeriodListResponse, error) {
	periods, err := s.periodRepo.ListByClinic(ctx, clinicID)
	if err != nil {
		s.logger.Error("ListPeriods: repository error for clinic=%d: %v", clinicID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return FromDomainPeriodList(periods), nil
}

// Delete удаляет период блокировки по стабильному идентификатору.
// Идентификатор генерируется при создании, поэтому удаление не страдает
// от сдвига индексов при конкурентных изменениях списка.
func (s *Service) Delete(ctx context.Context, clinicID int64, publicID uuid.UUID) error {
	s.logger.Info("DeletePeriod: clinic=%d, period=%s", clinicID, publicID)

	err := s.periodRepo.DeleteByPublicID(ctx, clinicID, publicID)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("DeletePeriod: period %s not found in clinic=%d", publicID, clinicID)
			return ErrPeriodNotFound
		}
		s.logger.Error("DeletePeriod: repository error for clinic=%d: %v", clinicID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeletePeriod: deleted period %s from clinic=%d", publicID, clinicID)
	return nil
}
