package get_clinic_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCS-BookingService/internal/api/handlers"
	"github.com/m04kA/MCS-BookingService/internal/service/bookings"
)

const (
	msgInvalidClinicID = "некорректный ID клиники"
	msgInvalidParams   = "некорректные параметры запроса"
)

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

// Handle GET /api/v1/clinics/{clinicId}/bookings
// Query params: practitionerId, patientId, startDate, endDate, status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clinicID, err := strconv.ParseInt(vars["clinicId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/bookings - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	serviceReq, err := ToServiceRequest(clinicID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /clinics/{id}/bookings - Invalid parameters: clinic_id=%d, error=%v", clinicID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.GetClinicBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput), errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /clinics/{id}/bookings - Invalid input: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /clinics/{id}/bookings - Failed to get bookings: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clinics/{id}/bookings - Bookings retrieved: clinic_id=%d, total=%d", clinicID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
