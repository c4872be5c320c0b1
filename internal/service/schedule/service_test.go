package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/schedule"
)

type fakeScheduleRepo struct {
	schedule *domain.PractitionerSchedule
	upserted *domain.PractitionerSchedule
	getErr   error
}

func (f *fakeScheduleRepo) GetScheduleWithHierarchy(_ context.Context, _ int64, _ string) (*domain.PractitionerSchedule, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.schedule, nil
}

func (f *fakeScheduleRepo) Upsert(_ context.Context, s *domain.PractitionerSchedule) (*domain.PractitionerSchedule, error) {
	saved := *s
	saved.ID = 1
	f.upserted = &saved
	return &saved, nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, _ int64, _ *string) error {
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetFallsBackToDefault(t *testing.T) {
	svc := NewService(&fakeScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound}, nopLogger{})

	resp, err := svc.Get(context.Background(), 10, "dr-petit")
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	assert.Equal(t, domain.DefaultDayStartTime, resp.DayStartTime)
	assert.Equal(t, domain.DefaultDayEndTime, resp.DayEndTime)
	assert.Equal(t, domain.DefaultSlotIntervalMinutes, resp.SlotIntervalMinutes)
}

func TestGetReturnsPractitionerSchedule(t *testing.T) {
	practitioner := "dr-petit"
	svc := NewService(&fakeScheduleRepo{schedule: &domain.PractitionerSchedule{
		ID:                  1,
		ClinicID:            10,
		PractitionerID:      &practitioner,
		DayStartTime:        "08:00",
		DayEndTime:          "14:00",
		SlotIntervalMinutes: 20,
	}}, nopLogger{})

	resp, err := svc.Get(context.Background(), 10, "dr-petit")
	require.NoError(t, err)

	assert.False(t, resp.IsDefault)
	assert.Equal(t, "08:00", resp.DayStartTime)
	assert.Equal(t, 20, resp.SlotIntervalMinutes)
}

func TestUpsertValidatesConfig(t *testing.T) {
	practitioner := "dr-petit"
	svc := NewService(&fakeScheduleRepo{}, nopLogger{})

	base := func() *UpsertScheduleRequest {
		return &UpsertScheduleRequest{
			ClinicID:            10,
			PractitionerID:      &practitioner,
			DayStartTime:        "09:00",
			DayEndTime:          "17:00",
			SlotIntervalMinutes: 30,
		}
	}

	resp, err := svc.Upsert(context.Background(), base())
	require.NoError(t, err)
	assert.Equal(t, "09:00", resp.DayStartTime)

	tests := []struct {
		name   string
		mutate func(*UpsertScheduleRequest)
	}{
		{"interval below minimum", func(r *UpsertScheduleRequest) { r.SlotIntervalMinutes = 4 }},
		{"interval above maximum", func(r *UpsertScheduleRequest) { r.SlotIntervalMinutes = 481 }},
		{"end before start", func(r *UpsertScheduleRequest) { r.DayStartTime, r.DayEndTime = "17:00", "09:00" }},
		{"end equals start", func(r *UpsertScheduleRequest) { r.DayEndTime = "09:00" }},
		{"window shorter than one slot", func(r *UpsertScheduleRequest) {
			r.DayEndTime = "09:20"
		}},
		{"garbage start time", func(r *UpsertScheduleRequest) { r.DayStartTime = "9am" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			_, err := svc.Upsert(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidScheduleConfig)
		})
	}
}

func TestUpsertClinicDefault(t *testing.T) {
	repo := &fakeScheduleRepo{}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Upsert(context.Background(), &UpsertScheduleRequest{
		ClinicID:            10,
		PractitionerID:      nil,
		DayStartTime:        "08:00",
		DayEndTime:          "18:00",
		SlotIntervalMinutes: 15,
	})
	require.NoError(t, err)

	assert.True(t, resp.IsDefault)
	require.NotNil(t, repo.upserted)
	assert.Nil(t, repo.upserted.PractitionerID)
}
