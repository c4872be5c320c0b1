package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/schedule"
)

// UseCase use case получения аннотированной сетки слотов на день.
// Только чтение, без побочных эффектов - UI может дергать его на каждое
// изменение выбранной даты или врача.
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	periodRepo   PeriodRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	periodRepo PeriodRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		periodRepo:   periodRepo,
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: clinic=%d, practitioner=%s, date=%s",
		req.ClinicID, req.PractitionerID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем конфигурацию сетки с учетом иерархии
	schedule, err := uc.scheduleRepo.GetScheduleWithHierarchy(ctx, req.ClinicID, req.PractitionerID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get schedule: %v", err)
		return nil, fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
	}

	// Если конфигурация не найдена, используем дефолтные значения
	if schedule == nil {
		schedule = domain.DefaultSchedule(req.ClinicID)
		uc.logger.Info("GetAvailableSlots: using default schedule for clinic=%d, practitioner=%s",
			req.ClinicID, req.PractitionerID)
	} else {
		uc.logger.Info("GetAvailableSlots: using schedule id=%d", schedule.ID)
	}

	// 3. Генерируем сетку слотов; ошибка конфигурации фатальна для запроса
	grid, err := generateTimeSlots(schedule.DayStartTime, schedule.DayEndTime, schedule.SlotIntervalMinutes)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate grid: %v", err)
		return nil, err
	}

	// 4. Проверяем, не попадает ли дата в период блокировки.
	// Периоды идут в порядке хранения - первый подходящий дает причину.
	periods, err := uc.periodRepo.ListByClinic(ctx, req.ClinicID)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list disabled periods: %v", err)
		return nil, fmt.Errorf("%w: failed to list disabled periods: %v", ErrInternal, err)
	}

	blocking := domain.FindBlockingPeriod(periods, req.Date)

	// 5. Получаем активные записи врача на эту дату
	filter := domain.ClinicBookingsFilter{
		ClinicID:        req.ClinicID,
		PractitionerID:  &req.PractitionerID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByClinicWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Размечаем сетку
	resp := &Response{
		Date:           req.Date,
		ClinicID:       req.ClinicID,
		PractitionerID: req.PractitionerID,
		Slots:          annotateSlots(grid, bookings, blocking != nil),
	}

	if blocking != nil {
		resp.DayBlocked = true
		resp.BlockReason = &blocking.Reason
		uc.logger.Info("GetAvailableSlots: date %s is blocked for clinic=%d: %s",
			req.Date.Format(domain.DateFormat), req.ClinicID, blocking.Reason)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for clinic=%d, practitioner=%s, date=%s",
		len(resp.Slots), req.ClinicID, req.PractitionerID, req.Date.Format(domain.DateFormat))

	return resp, nil
}
