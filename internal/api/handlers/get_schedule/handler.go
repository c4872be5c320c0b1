package get_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCS-BookingService/internal/api/handlers"
	"github.com/m04kA/MCS-BookingService/internal/service/schedule"
)

const (
	msgInvalidClinicID       = "некорректный ID клиники"
	msgMissingPractitionerID = "отсутствует идентификатор врача"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clinics/{clinicId}/practitioners/{practitionerId}/schedule
// Публичный endpoint - без авторизации. Если конфигурации нет ни у врача,
// ни у клиники, возвращается глобальный дефолт.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clinicID, err := strconv.ParseInt(vars["clinicId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /schedule - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	practitionerID := vars["practitionerId"]
	if practitionerID == "" {
		handlers.RespondBadRequest(w, msgMissingPractitionerID)
		return
	}

	result, err := h.service.Get(r.Context(), clinicID, practitionerID)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /schedule - Invalid input: clinic_id=%d, practitioner_id=%s, error=%v",
				clinicID, practitionerID, err)
			handlers.RespondBadRequest(w, msgInvalidClinicID)

		default:
			h.logger.Error("GET /schedule - Failed to get schedule: clinic_id=%d, practitioner_id=%s, error=%v",
				clinicID, practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule - Schedule retrieved: clinic_id=%d, practitioner_id=%s, default=%t",
		clinicID, practitionerID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
