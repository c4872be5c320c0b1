package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/MCS-BookingService/internal/service/bookings/models"
)

type fakeBookingRepo struct {
	booking       *domain.Booking
	updatedStatus *domain.BookingStatus
	cancelStatus  *domain.BookingStatus
	cancelReason  string
	expireBefore  time.Time
	expiredCount  int64
}

func (f *fakeBookingRepo) GetByID(_ context.Context, _ int64, _ int64) (*domain.Booking, error) {
	if f.booking == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByClinicWithFilter(_ context.Context, _ domain.ClinicBookingsFilter) ([]*domain.Booking, error) {
	if f.booking == nil {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, _ int64, status domain.BookingStatus) error {
	if f.booking == nil {
		return bookingRepo.ErrBookingNotFound
	}
	f.updatedStatus = &status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, _ int64, _ int64, status domain.BookingStatus, reason string) error {
	if f.booking == nil {
		return bookingRepo.ErrBookingNotFound
	}
	f.cancelStatus = &status
	f.cancelReason = reason
	return nil
}

func (f *fakeBookingRepo) ExpireOverduePending(_ context.Context, before time.Time) (int64, error) {
	f.expireBefore = before
	return f.expiredCount, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:             5,
		ClinicID:       10,
		PractitionerID: "dr-petit",
		PatientID:      "patient-42",
		FirstName:      "Amine",
		LastName:       "Benali",
		Sex:            "M",
		DateOfBirth:    time.Date(1990, time.March, 15, 0, 0, 0, 0, time.UTC),
		BookingDate:    time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		StartTime:      "10:00",
		OrderNumber:    3,
		Status:         domain.StatusPendingApproval,
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 10, 5)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestUpdateStatusConfirms(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, 5, &models.UpdateStatusRequest{
		ActorID: "staff-1",
		Status:  "confirmed",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
}

func TestUpdateStatusRejectsCancellationStatuses(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: pendingBooking()}, nopLogger{})

	for _, status := range []string{"cancelled_by_patient", "cancelled_by_clinic"} {
		err := svc.UpdateStatus(context.Background(), 10, 5, &models.UpdateStatusRequest{
			ActorID: "staff-1",
			Status:  status,
		})
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %s", status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewService(&fakeBookingRepo{booking: pendingBooking()}, nopLogger{})

	err := svc.UpdateStatus(context.Background(), 10, 5, &models.UpdateStatusRequest{
		ActorID: "staff-1",
		Status:  "approved",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancelByPatient(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, 5, &models.CancelBookingRequest{
		ActorID:            "staff-1",
		ByPatient:          true,
		CancellationReason: "empêchement",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.cancelStatus)
	assert.Equal(t, domain.StatusCancelledByPatient, *repo.cancelStatus)
	assert.Equal(t, "empêchement", repo.cancelReason)
}

func TestCancelByClinic(t *testing.T) {
	repo := &fakeBookingRepo{booking: pendingBooking()}
	svc := NewService(repo, nopLogger{})

	err := svc.Cancel(context.Background(), 10, 5, &models.CancelBookingRequest{
		ActorID:            "staff-1",
		ByPatient:          false,
		CancellationReason: "praticien absent",
	})
	require.NoError(t, err)
	require.NotNil(t, repo.cancelStatus)
	assert.Equal(t, domain.StatusCancelledByClinic, *repo.cancelStatus)
}

func TestCancelRejectsFinishedBooking(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusCompleted
	svc := NewService(&fakeBookingRepo{booking: b}, nopLogger{})

	err := svc.Cancel(context.Background(), 10, 5, &models.CancelBookingRequest{ActorID: "staff-1"})
	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestExpireOverduePending(t *testing.T) {
	repo := &fakeBookingRepo{expiredCount: 3}
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2026, time.September, 15, 8, 30, 0, 0, time.UTC)}

	count, err := svc.ExpireOverduePending(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
	assert.Equal(t, time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC), repo.expireBefore,
		"bookings before today expire, today's do not")
}
