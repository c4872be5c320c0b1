package patient

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/m04kA/MCS-BookingService/internal/domain"
	"github.com/m04kA/MCS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MCS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий карточек пациентов.
// Сервис записи только читает карточки - для защиты от повторного
// использования чужого идентификатора пациента. Ведение карточек
// принадлежит другому контуру системы.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория карточек пациентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByClinicAndPatientID получает карточку пациента по стабильному идентификатору
func (r *Repository) GetByClinicAndPatientID(ctx context.Context, clinicID int64, patientID string) (*domain.Patient, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"clinic_id",
		"patient_id",
		"first_name",
		"last_name",
		"sex",
		"date_of_birth",
		"created_at",
		"updated_at",
	).
		From("patients").
		Where(squirrel.Eq{"clinic_id": clinicID, "patient_id": patientID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByClinicAndPatientID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Patient
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.ClinicID,
		&p.PatientID,
		&p.FirstName,
		&p.LastName,
		&p.Sex,
		&p.DateOfBirth,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrPatientNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByClinicAndPatientID - scan patient: %v", ErrScanRow, err)
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time

	return &p, nil
}
