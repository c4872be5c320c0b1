package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	patientRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/patient"
	scheduleRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/schedule"
)

// UseCase use case создания записи на прием (самозапись пациента).
//
// Порядок проверок фиксирован и определяет, какую ошибку увидит пользователь:
// 1. обязательные поля -> 2. формат телефона -> 3. дата рождения ->
// 4. период блокировки -> 5. метка принадлежит сетке -> 6. слот свободен ->
// 7. у пациента нет записи к врачу на этот день -> 8. идентификатор пациента
// не конфликтует с карточкой.
type UseCase struct {
	bookingRepo  BookingRepository
	scheduleRepo ScheduleRepository
	periodRepo   PeriodRepository
	patientRepo  PatientRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	scheduleRepo ScheduleRepository,
	periodRepo PeriodRepository,
	patientRepo PatientRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		periodRepo:   periodRepo,
		patientRepo:  patientRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
// Проверки конфликтов и вставка идут в сериализуемой транзакции с блокировкой
// строк дня (FOR UPDATE) - две конкурентные заявки на один слот не пройдут обе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: clinic=%d, practitioner=%s, patient=%s, date=%s, time=%s",
		req.ClinicID, req.PractitionerID, req.PatientID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Обязательные поля
	if err := validateRequiredFields(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Формат телефона
	if err := validatePhone(req.Phone); err != nil {
		uc.logger.Warn("CreateBooking: phone validation failed: %v", err)
		return nil, err
	}

	// 3. Дата рождения
	now := uc.timeProvider.Now()
	dateOfBirth, err := parseBirthDate(req.DateOfBirth, now)
	if err != nil {
		uc.logger.Warn("CreateBooking: birth date validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 4-8 + вставка атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4. Период блокировки. Порядок хранения дает детерминированную причину.
		periods, err := uc.periodRepo.ListByClinic(txCtx, req.ClinicID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to list disabled periods: %v", err)
			return fmt.Errorf("%w: failed to list disabled periods: %v", ErrInternal, err)
		}

		if blocking := domain.FindBlockingPeriod(periods, req.Date); blocking != nil {
			uc.logger.Warn("CreateBooking: date %s is blocked for clinic=%d: %s",
				req.Date.Format(domain.DateFormat), req.ClinicID, blocking.Reason)
			return fmt.Errorf("%w: %s", ErrDateUnavailable, blocking.Reason)
		}

		// 5. Метка принадлежит сетке врача
		schedule, err := uc.scheduleRepo.GetScheduleWithHierarchy(txCtx, req.ClinicID, req.PractitionerID)
		if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("CreateBooking: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		if schedule == nil {
			schedule = domain.DefaultSchedule(req.ClinicID)
			uc.logger.Info("CreateBooking: using default schedule for clinic=%d, practitioner=%s",
				req.ClinicID, req.PractitionerID)
		}

		orderNumber, err := validateSlotOnGrid(req.StartTime, schedule)
		if err != nil {
			uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
			return err
		}

		// Получаем все активные записи врача на эту дату с блокировкой (FOR UPDATE)
		filter := domain.ClinicBookingsFilter{
			ClinicID:        req.ClinicID,
			PractitionerID:  &req.PractitionerID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByClinicWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 6. Слот свободен
		if conflict := findSlotConflict(bookings, req.StartTime); conflict != nil {
			uc.logger.Warn("CreateBooking: slot %s already taken by booking id=%d", req.StartTime, conflict.ID)
			return ErrSlotTaken
		}

		// 7. Одна запись пациента к врачу в день
		if dup := findPatientDuplicate(bookings, req.PatientID); dup != nil {
			uc.logger.Warn("CreateBooking: patient %s already has booking id=%d on %s",
				req.PatientID, dup.ID, req.Date.Format(domain.DateFormat))
			return ErrDuplicateBooking
		}

		// 8. Идентификатор пациента не занят другим человеком.
		// Карточка только читается: upsert карточек отключен намеренно,
		// их ведет регистратура, а не самозапись.
		master, err := uc.patientRepo.GetByClinicAndPatientID(txCtx, req.ClinicID, req.PatientID)
		if err != nil && !errors.Is(err, patientRepo.ErrPatientNotFound) {
			uc.logger.Error("CreateBooking: failed to get patient record: %v", err)
			return fmt.Errorf("%w: failed to get patient record: %v", ErrInternal, err)
		}
		if master != nil && master.ConflictsWith(req.FirstName, req.LastName, req.Sex, dateOfBirth) {
			uc.logger.Warn("CreateBooking: patient id %s conflicts with existing record", req.PatientID)
			return ErrPatientIDConflict
		}

		// Создаем запись со статусом "ожидает подтверждения"
		booking := &domain.Booking{
			ClinicID:       req.ClinicID,
			PractitionerID: req.PractitionerID,
			PatientID:      req.PatientID,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Sex:            req.Sex,
			DateOfBirth:    dateOfBirth,
			AgeAtBooking:   domain.AgeAtDate(dateOfBirth, now),
			Phone:          req.Phone,
			MedicalHistory: req.MedicalHistory,
			BookingDate:    req.Date,
			StartTime:      req.StartTime,
			OrderNumber:    orderNumber,
			Status:         domain.StatusPendingApproval,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:             result.ID,
		ClinicID:       result.ClinicID,
		PractitionerID: result.PractitionerID,
		PatientID:      result.PatientID,
		FirstName:      result.FirstName,
		LastName:       result.LastName,
		Sex:            result.Sex,
		DateOfBirth:    result.DateOfBirth,
		AgeAtBooking:   result.AgeAtBooking,
		Phone:          result.Phone,
		MedicalHistory: result.MedicalHistory,
		BookingDate:    result.BookingDate,
		StartTime:      result.StartTime,
		OrderNumber:    result.OrderNumber,
		Status:         string(result.Status),
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}
