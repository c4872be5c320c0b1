package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	scheduleRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/schedule"
	"github.com/m04kA/MCS-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByClinicWithFilter(_ context.Context, _ domain.ClinicBookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, f.err
}

type fakeScheduleRepo struct {
	schedule *domain.PractitionerSchedule
	err      error
}

func (f *fakeScheduleRepo) GetScheduleWithHierarchy(_ context.Context, _ int64, _ string) (*domain.PractitionerSchedule, error) {
	return f.schedule, f.err
}

type fakePeriodRepo struct {
	periods []*domain.DisabledPeriod
	err     error
}

func (f *fakePeriodRepo) ListByClinic(_ context.Context, _ int64) ([]*domain.DisabledPeriod, error) {
	return f.periods, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func testDate() time.Time {
	return time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
}

func testSchedule() *domain.PractitionerSchedule {
	practitioner := "dr-petit"
	return &domain.PractitionerSchedule{
		ID:                  1,
		ClinicID:            10,
		PractitionerID:      &practitioner,
		DayStartTime:        "09:00",
		DayEndTime:          "11:00",
		SlotIntervalMinutes: 30,
	}
}

func TestExecuteAnnotatesReservedSlots(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			{StartTime: "09:30", Status: domain.StatusPendingApproval},
			{StartTime: "10:00", Status: domain.StatusCancelledByClinic},
		}},
		&fakeScheduleRepo{schedule: testSchedule()},
		&fakePeriodRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ClinicID:       10,
		PractitionerID: "dr-petit",
		Date:           testDate(),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 4)
	assert.False(t, resp.DayBlocked)
	assert.Nil(t, resp.BlockReason)

	assert.Equal(t, Slot{StartTime: "09:00", OrderNumber: 1, Reserved: false}, resp.Slots[0])
	assert.Equal(t, Slot{StartTime: "09:30", OrderNumber: 2, Reserved: true}, resp.Slots[1])
	// Отмененная запись слот не резервирует
	assert.Equal(t, Slot{StartTime: "10:00", OrderNumber: 3, Reserved: false}, resp.Slots[2])
	assert.Equal(t, Slot{StartTime: "10:30", OrderNumber: 4, Reserved: false}, resp.Slots[3])
}

func TestExecuteBlockedDay(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{schedule: testSchedule()},
		&fakePeriodRepo{periods: []*domain.DisabledPeriod{
			{
				StartDate: testDate().AddDate(0, 0, -1),
				EndDate:   testDate().AddDate(0, 0, 1),
				Reason:    "fermeture annuelle",
			},
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ClinicID:       10,
		PractitionerID: "dr-petit",
		Date:           testDate(),
	})
	require.NoError(t, err)

	assert.True(t, resp.DayBlocked)
	require.NotNil(t, resp.BlockReason)
	assert.Equal(t, "fermeture annuelle", *resp.BlockReason)

	// Сетка по-прежнему возвращается, но все слоты заняты
	require.Len(t, resp.Slots, 4)
	for _, s := range resp.Slots {
		assert.True(t, s.Reserved)
	}
}

func TestExecuteFallsBackToDefaultSchedule(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{err: scheduleRepo.ErrScheduleNotFound},
		&fakePeriodRepo{},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		ClinicID:       10,
		PractitionerID: "dr-petit",
		Date:           testDate(),
	})
	require.NoError(t, err)

	// Дефолт 09:00-17:00 с шагом 30 -> 16 слотов
	assert.Len(t, resp.Slots, 16)
	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("16:30"), resp.Slots[len(resp.Slots)-1].StartTime)
}

func TestExecuteBrokenScheduleConfigIsFatal(t *testing.T) {
	practitioner := "dr-petit"
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeScheduleRepo{schedule: &domain.PractitionerSchedule{
			ClinicID:            10,
			PractitionerID:      &practitioner,
			DayStartTime:        "17:00",
			DayEndTime:          "09:00",
			SlotIntervalMinutes: 30,
		}},
		&fakePeriodRepo{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		ClinicID:       10,
		PractitionerID: "dr-petit",
		Date:           testDate(),
	})
	assert.ErrorIs(t, err, ErrInvalidScheduleConfig)
}

func TestExecuteValidatesInput(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeScheduleRepo{}, &fakePeriodRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{ClinicID: 0, PractitionerID: "dr-petit", Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ClinicID: 10, PractitionerID: "", Date: testDate()})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ClinicID: 10, PractitionerID: "dr-petit"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
