package cancel_booking

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
	msgNotFound           = "запись на прием не найдена"
	msgCannotCancel       = "запись не может быть отменена в текущем статусе"
	msgMissingUserID      = "отсутствует ID сотрудника"
)

// CancelRequest HTTP request model
type CancelRequest struct {
	ByPatient          bool   `json:"byPatient"`
	CancellationReason string `json:"cancellationReason"`
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

// Handle PATCH /api/v1/clinics/{clinicId}/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clinicID, err := strconv.ParseInt(vars["clinicId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CancelRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err = h.service.Cancel(r.Context(), clinicID, bookingID, &models.CancelBookingRequest{
		ActorID:            actorID,
		ByPatient:          req.ByPatient,
		CancellationReason: req.CancellationReason,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: clinic_id=%d, booking_id=%d",
				clinicID, bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: clinic_id=%d, booking_id=%d",
				clinicID, bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel: clinic_id=%d, booking_id=%d, error=%v",
				clinicID, bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	booking, err := h.service.GetByID(r.Context(), clinicID, bookingID)
	if err != nil {
		h.logger.Error("PATCH /bookings/{id}/cancel - Failed to reload booking: clinic_id=%d, booking_id=%d, error=%v",
			clinicID, bookingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: clinic_id=%d, booking_id=%d, by_patient=%t, actor=%s",
		clinicID, bookingID, req.ByPatient, actorID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
