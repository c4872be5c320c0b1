package period

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/m04kA/MCS-BookingService/internal/domain"
	"github.com/m04kA/MCS-BookingService/pkg/dbmetrics"
	"github.com/m04kA/MCS-BookingService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с периодами блокировки записи
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория периодов блокировки
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет период блокировки. Внешний идентификатор public_id
// генерируется здесь - удаление идет по нему, а не по позиции в списке.
func (r *Repository) Create(ctx context.Context, p *domain.DisabledPeriod) (*domain.DisabledPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	p.PublicID = uuid.New()

	query, args, err := psqlbuilder.Insert("disabled_periods").
		Columns(
			"public_id",
			"clinic_id",
			"start_date",
			"end_date",
			"reason",
		).
		Values(
			p.PublicID,
			p.ClinicID,
			p.StartDate,
			p.EndDate,
			p.Reason,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	p.CreatedAt = createdAt.Time

	return p, nil
}

// ListByClinic получает все периоды блокировки клиники в порядке добавления.
// Порядок стабилен (id ASC), поэтому выбор "первого подходящего" периода
// при проверке даты детерминирован.
func (r *Repository) ListByClinic(ctx context.Context, clinicID int64) ([]*domain.DisabledPeriod, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"public_id",
		"clinic_id",
		"start_date",
		"end_date",
		"reason",
		"created_at",
	).
		From("disabled_periods").
		Where(squirrel.Eq{"clinic_id": clinicID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByClinic - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByClinic - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	periods := make([]*domain.DisabledPeriod, 0)

	for rows.Next() {
		var p domain.DisabledPeriod
		var createdAt sql.NullTime

		err := rows.Scan(
			&p.ID,
			&p.PublicID,
			&p.ClinicID,
			&p.StartDate,
			&p.EndDate,
			&p.Reason,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByClinic - scan row: %v", ErrScanRow, err)
		}

		p.CreatedAt = createdAt.Time
		periods = append(periods, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByClinic - rows error: %v", ErrScanRow, err)
	}

	return periods, nil
}

// DeleteByPublicID удаляет период блокировки по внешнему идентификатору
func (r *Repository) DeleteByPublicID(ctx context.Context, clinicID int64, publicID uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("disabled_periods").
		Where(squirrel.Eq{"clinic_id": clinicID, "public_id": publicID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByPublicID - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByPublicID - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByPublicID - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPeriodNotFound
	}

	return nil
}
