package update_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCS-BookingService/internal/api/handlers"
	"github.com/m04kA/MCS-BookingService/internal/api/middleware"
	"github.com/m04kA/MCS-BookingService/internal/service/bookings"
	"github.com/m04kA/MCS-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidClinicID    = "некорректный ID клиники"
	msgInvalidBookingID   = "некорректный ID записи"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый статус записи"
	msgNotFound           = "запись на прием не найдена"
	msgMissingUserID      = "отсутствует ID сотрудника"
)

// StatusRequest HTTP request model
type StatusRequest struct {
	Status string `json:"status"`
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/clinics/{clinicId}/bookings/{bookingId}/status
// Подтверждение, завершение и отметка неявки; отмена идет через /cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clinicID, err := strconv.ParseInt(vars["clinicId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req StatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.UpdateStatus(r.Context(), clinicID, bookingID, &models.UpdateStatusRequest{
		ActorID: actorID,
		Status:  req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/status - Booking not found: clinic_id=%d, booking_id=%d",
				clinicID, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrInvalidStatus), errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/status - Invalid status: clinic_id=%d, booking_id=%d, status=%s",
				clinicID, bookingID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /bookings/{id}/status - Failed to update status: clinic_id=%d, booking_id=%d, error=%v",
				clinicID, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Возвращаем обновленную запись
	booking, err := h.service.GetByID(r.Context(), clinicID, bookingID)
	if err != nil {
		h.logger.Error("PATCH /bookings/{id}/status - Failed to reload booking: clinic_id=%d, booking_id=%d, error=%v",
			clinicID, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status updated: clinic_id=%d, booking_id=%d, status=%s, actor=%s",
		clinicID, bookingID, req.Status, actorID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
