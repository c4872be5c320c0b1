package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/MCS-BookingService/internal/domain"
	"github.com/m04kA/MCS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MCS-BookingService/pkg/psqlbuilder"
)

var scheduleColumns = []string{
	"id",
	"clinic_id",
	"practitioner_id",
	"day_start_time",
	"day_end_time",
	"slot_interval_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигураций сетки приема
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигураций
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByClinicAndPractitioner получает конфигурацию для конкретного врача
// (practitionerID != nil) или клиники в целом (practitionerID == nil)
func (r *Repository) GetByClinicAndPractitioner(ctx context.Context, clinicID int64, practitionerID *string) (*domain.PractitionerSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(scheduleColumns...).
		From("practitioner_schedules").
		Where(squirrel.Eq{"clinic_id": clinicID})

	if practitionerID == nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"practitioner_id": nil})
	} else {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"practitioner_id": *practitionerID})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClinicAndPractitioner - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.PractitionerSchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.ClinicID,
		&s.PractitionerID,
		&s.DayStartTime,
		&s.DayEndTime,
		&s.SlotIntervalMinutes,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClinicAndPractitioner - scan schedule: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// GetScheduleWithHierarchy получает конфигурацию с учетом иерархии приоритетов:
// 1. Конфигурация конкретного врача (clinic_id, practitioner_id)
// 2. Конфигурация клиники по умолчанию (clinic_id, NULL)
//
// Если конфигурация не найдена ни на одном уровне, возвращает ErrScheduleNotFound
func (r *Repository) GetScheduleWithHierarchy(ctx context.Context, clinicID int64, practitionerID string) (*domain.PractitionerSchedule, error) {
	// 1. Пробуем получить конфигурацию конкретного врача
	s, err := r.GetByClinicAndPractitioner(ctx, clinicID, &practitionerID)
	if err == nil {
		return s, nil
	}
	if err != ErrScheduleNotFound {
		return nil, fmt.Errorf("%w: GetScheduleWithHierarchy - level 1 (practitioner): %v", ErrExecQuery, err)
	}

	// 2. Пробуем получить конфигурацию клиники по умолчанию
	s, err = r.GetByClinicAndPractitioner(ctx, clinicID, nil)
	if err == nil {
		return s, nil
	}
	if err != ErrScheduleNotFound {
		return nil, fmt.Errorf("%w: GetScheduleWithHierarchy - level 2 (clinic default): %v", ErrExecQuery, err)
	}

	return nil, ErrScheduleNotFound
}

// Upsert создает или обновляет конфигурацию для пары (клиника, врач).
// practitioner_id NULL трактуется как конфигурация клиники по умолчанию.
func (r *Repository) Upsert(ctx context.Context, s *domain.PractitionerSchedule) (*domain.PractitionerSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("practitioner_schedules").
		Columns(
			"clinic_id",
			"practitioner_id",
			"day_start_time",
			"day_end_time",
			"slot_interval_minutes",
		).
		Values(
			s.ClinicID,
			s.PractitionerID,
			s.DayStartTime,
			s.DayEndTime,
			s.SlotIntervalMinutes,
		).
		Suffix(`ON CONFLICT (clinic_id, COALESCE(practitioner_id, '')) DO UPDATE SET
			day_start_time = EXCLUDED.day_start_time,
			day_end_time = EXCLUDED.day_end_time,
			slot_interval_minutes = EXCLUDED.slot_interval_minutes,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// Delete удаляет конфигурацию для пары (клиника, врач)
func (r *Repository) Delete(ctx context.Context, clinicID int64, practitionerID *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteBuilder := psqlbuilder.Delete("practitioner_schedules").
		Where(squirrel.Eq{"clinic_id": clinicID})

	if practitionerID == nil {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"practitioner_id": nil})
	} else {
		deleteBuilder = deleteBuilder.Where(squirrel.Eq{"practitioner_id": *practitionerID})
	}

	query, args, err := deleteBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrScheduleNotFound
	}

	return nil
}
