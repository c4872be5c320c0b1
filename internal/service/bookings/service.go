package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/MCS-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/MCS-BookingService/internal/service/bookings/models"
)

// Service сервис работы персонала клиники с записями на прием:
// просмотр, подтверждение, отмена. Создание записей - отдельный usecase
// самозаписи пациента.
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись на прием по ID в рамках клиники
func (s *Service) GetByID(ctx context.Context, clinicID, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for clinic=%d", id, clinicID)

	booking, err := s.bookingRepo.GetByID(ctx, clinicID, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found in clinic=%d", id, clinicID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetClinicBookings получает записи клиники с гибкой фильтрацией
// по врачу, пациенту, периоду и статусу
func (s *Service) GetClinicBookings(ctx context.Context, req *models.GetClinicBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetClinicBookings: fetching bookings for clinic=%d", req.ClinicID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetClinicBookings: invalid filter for clinic=%d: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByClinicWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetClinicBookings: repository error for clinic=%d: %v", req.ClinicID, err)
		return nil, fmt.Errorf("%w: GetClinicBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetClinicBookings: successfully fetched %d bookings for clinic=%d", len(bookings), req.ClinicID)
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus обновляет статус записи (подтверждение, завершение, неявка)
func (s *Service) UpdateStatus(ctx context.Context, clinicID, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by actor=%s",
		bookingID, req.Status, req.ActorID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	// Отмена идет через Cancel с причиной, не через смену статуса
	if newStatus == domain.StatusCancelledByPatient || newStatus == domain.StatusCancelledByClinic {
		s.logger.Warn("UpdateStatus: cancellation status %s must go through Cancel", newStatus)
		return fmt.Errorf("%w: use cancel endpoint for cancellation", ErrInvalidStatus)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, clinicID, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Cancel отменяет запись на прием с указанием причины
func (s *Service) Cancel(ctx context.Context, clinicID, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by actor=%s", bookingID, req.ActorID)

	booking, err := s.bookingRepo.GetByID(ctx, clinicID, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	cancelStatus := domain.StatusCancelledByClinic
	if req.ByPatient {
		cancelStatus = domain.StatusCancelledByPatient
	}

	if err := s.bookingRepo.Cancel(ctx, clinicID, bookingID, cancelStatus, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with status=%s", bookingID, cancelStatus)
	return nil
}

// ExpireOverduePending переводит в статус expired записи, которые так и не были
// подтверждены до наступления даты приема. Вызывается фоновой задачей.
func (s *Service) ExpireOverduePending(ctx context.Context) (int64, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	count, err := s.bookingRepo.ExpireOverduePending(ctx, today)
	if err != nil {
		s.logger.Error("ExpireOverduePending: repository error: %v", err)
		return 0, fmt.Errorf("%w: ExpireOverduePending - repository error: %v", ErrInternal, err)
	}

	if count > 0 {
		s.logger.Info("ExpireOverduePending: expired %d overdue pending bookings", count)
	}

	return count, nil
}
