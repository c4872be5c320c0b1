package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/schedule"
)

// Service сервис управления конфигурациями сетки приема.
// Конфигурация разрешается по иерархии: врач -> клиника -> глобальный дефолт.
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса конфигураций
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// Get возвращает действующую конфигурацию сетки для врача клиники.
// Если ни у врача, ни у клиники конфигурации нет, возвращается
// глобальный дефолт (09:00-17:00, шаг 30 минут).
func (s *Service) Get(ctx context.Context, clinicID int64, practitionerID string) (*ScheduleResponse, error) {
	if clinicID <= 0 {
		return nil, fmt.Errorf("%w: clinicID must be positive", ErrInvalidInput)
	}
	if practitionerID == "" {
		return nil, fmt.Errorf("%w: practitionerID is required", ErrInvalidInput)
	}

	schedule, err := s.scheduleRepo.GetScheduleWithHierarchy(ctx, clinicID, practitionerID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return FromDomainSchedule(domain.DefaultSchedule(clinicID)), nil
		}
		s.logger.Error("GetSchedule: repository error for clinic=%d, practitioner=%s: %v", clinicID, practitionerID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return FromDomainSchedule(schedule), nil
}

// Upsert создает или обновляет конфигурацию сетки
func (s *Service) Upsert(ctx context.Context, req *UpsertScheduleRequest) (*ScheduleResponse, error) {
	s.logger.Info("UpsertSchedule: clinic=%d, practitioner=%v, window=%s-%s, interval=%d",
		req.ClinicID, req.PractitionerID, req.DayStartTime, req.DayEndTime, req.SlotIntervalMinutes)

	if req.ClinicID <= 0 {
		return nil, fmt.Errorf("%w: clinicID must be positive", ErrInvalidInput)
	}
	if err := s.validateConfig(req); err != nil {
		s.logger.Warn("UpsertSchedule: invalid config for clinic=%d: %v", req.ClinicID, err)
		return nil, err
	}

	schedule := &domain.PractitionerSchedule{
		ClinicID:            req.ClinicID,
		PractitionerID:      req.PractitionerID,
		DayStartTime:        req.DayStartTime,
		DayEndTime:          req.DayEndTime,
		SlotIntervalMinutes: req.SlotIntervalMinutes,
	}

	saved, err := s.scheduleRepo.Upsert(ctx, schedule)
	if err != nil {
		s.logger.Error("UpsertSchedule: repository error for clinic=%d: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: Upsert - repository error: %v", ErrInternal, err)
	}

	return FromDomainSchedule(saved), nil
}

// Delete удаляет конфигурацию сетки (врача или дефолтную конфигурацию клиники)
func (s *Service) Delete(ctx context.Context, clinicID int64, practitionerID *string) error {
	if clinicID <= 0 {
		return fmt.Errorf("%w: clinicID must be positive", ErrInvalidInput)
	}

	err := s.scheduleRepo.Delete(ctx, clinicID, practitionerID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			return ErrScheduleNotFound
		}
		s.logger.Error("DeleteSchedule: repository error for clinic=%d: %v", clinicID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

// validateConfig проверяет окно приема и шаг сетки.
// Пустая сетка (окно короче одного слота) не допускается.
func (s *Service) validateConfig(req *UpsertScheduleRequest) error {
	if err := req.DayStartTime.Validate(); err != nil {
		return fmt.Errorf("%w: dayStartTime: %v", ErrInvalidScheduleConfig, err)
	}
	if err := req.DayEndTime.Validate(); err != nil {
		return fmt.Errorf("%w: dayEndTime: %v", ErrInvalidScheduleConfig, err)
	}
	if req.SlotIntervalMinutes < domain.MinSlotIntervalMinutes || req.SlotIntervalMinutes > domain.MaxSlotIntervalMinutes {
		return fmt.Errorf("%w: interval %d minutes out of range [%d, %d]",
			ErrInvalidScheduleConfig, req.SlotIntervalMinutes, domain.MinSlotIntervalMinutes, domain.MaxSlotIntervalMinutes)
	}

	startMin, err := req.DayStartTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: dayStartTime: %v", ErrInvalidScheduleConfig, err)
	}
	endMin, err := req.DayEndTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: dayEndTime: %v", ErrInvalidScheduleConfig, err)
	}
	if startMin >= endMin {
		return fmt.Errorf("%w: dayStartTime %s must be before dayEndTime %s",
			ErrInvalidScheduleConfig, req.DayStartTime, req.DayEndTime)
	}
	if endMin-startMin < req.SlotIntervalMinutes {
		return fmt.Errorf("%w: window %s-%s is shorter than one %d-minute slot",
			ErrInvalidScheduleConfig, req.DayStartTime, req.DayEndTime, req.SlotIntervalMinutes)
	}

	return nil
}
