package periods

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	periodRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/period"
)

type fakePeriodRepo struct {
	stored []*domain.DisabledPeriod
	nextID int64
}

func (f *fakePeriodRepo) Create(_ context.Context, p *domain.DisabledPeriod) (*domain.DisabledPeriod, error) {
	f.nextID++
	created := *p
	created.ID = f.nextID
	created.PublicID = uuid.New()
	created.CreatedAt = time.Now()
	f.stored = append(f.stored, &created)
	return &created, nil
}

func (f *fakePeriodRepo) ListByClinic(_ context.Context, clinicID int64) ([]*domain.DisabledPeriod, error) {
	result := make([]*domain.DisabledPeriod, 0)
	for _, p := range f.stored {
		if p.ClinicID == clinicID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (f *fakePeriodRepo) DeleteByPublicID(_ context.Context, clinicID int64, publicID uuid.UUID) error {
	for i, p := range f.stored {
		if p.ClinicID == clinicID && p.PublicID == publicID {
			f.stored = append(f.stored[:i], f.stored[i+1:]...)
			return nil
		}
	}
	return periodRepo.ErrPeriodNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddAndList(t *testing.T) {
	svc := NewService(&fakePeriodRepo{}, nopLogger{})

	first, err := svc.Add(context.Background(), &AddPeriodRequest{
		ClinicID:  10,
		StartDate: day(2026, time.December, 24),
		EndDate:   day(2026, time.December, 31),
		Reason:    "fermeture annuelle",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	// Пересекающийся период допустим и не дедуплицируется
	second, err := svc.Add(context.Background(), &AddPeriodRequest{
		ClinicID:  10,
		StartDate: day(2026, time.December, 28),
		EndDate:   day(2027, time.January, 2),
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	list, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	assert.Equal(t, first.ID, list.Periods[0].ID, "insertion order is preserved")
	assert.Equal(t, second.ID, list.Periods[1].ID)
}

func TestAddRejectsInvalidRange(t *testing.T) {
	svc := NewService(&fakePeriodRepo{}, nopLogger{})

	_, err := svc.Add(context.Background(), &AddPeriodRequest{
		ClinicID:  10,
		StartDate: day(2026, time.December, 31),
		EndDate:   day(2026, time.December, 24),
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestAddSingleDayPeriod(t *testing.T) {
	svc := NewService(&fakePeriodRepo{}, nopLogger{})

	resp, err := svc.Add(context.Background(), &AddPeriodRequest{
		ClinicID:  10,
		StartDate: day(2026, time.December, 25),
		EndDate:   day(2026, time.December, 25),
	})
	require.NoError(t, err)
	assert.Equal(t, resp.StartDate, resp.EndDate)
}

func TestAddValidatesInput(t *testing.T) {
	svc := NewService(&fakePeriodRepo{}, nopLogger{})

	_, err := svc.Add(context.Background(), &AddPeriodRequest{
		ClinicID:  0,
		StartDate: day(2026, time.December, 24),
		EndDate:   day(2026, time.December, 31),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Add(context.Background(), &AddPeriodRequest{ClinicID: 10})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteByStableID(t *testing.T) {
	repo := &fakePeriodRepo{}
	svc := NewService(repo, nopLogger{})

	first, err := svc.Add(context.Background(), &AddPeriodRequest{
		ClinicID:  10,
		StartDate: day(2026, time.July, 1),
		EndDate:   day(2026, time.July, 14),
	})
	require.NoError(t, err)
	second, err := svc.Add(context.Background(), &AddPeriodRequest{
		ClinicID:  10,
		StartDate: day(2026, time.August, 1),
		EndDate:   day(2026, time.August, 14),
	})
	require.NoError(t, err)

	firstID, err := uuid.Parse(first.ID)
	require.NoError(t, err)

	// Удаление первого не трогает второй: идентификатор стабилен,
	// а не является позицией в списке
	require.NoError(t, svc.Delete(context.Background(), 10, firstID))

	list, err := svc.List(context.Background(), 10)
	require.NoError(t, err)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, second.ID, list.Periods[0].ID)

	// Повторное удаление того же периода
	assert.ErrorIs(t, svc.Delete(context.Background(), 10, firstID), ErrPeriodNotFound)

	// Чужая клиника не видит период
	secondID, err := uuid.Parse(second.ID)
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Delete(context.Background(), 99, secondID), ErrPeriodNotFound)
}
