package update_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCS-BookingService/internal/api/handlers"
	"github.com/m04kA/MCS-BookingService/internal/service/schedule"
	"github.com/m04kA/MCS-BookingService/pkg/types"
)

const (
	msgInvalidClinicID       = "некорректный ID клиники"
	msgMissingPractitionerID = "отсутствует идентификатор врача"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidTime           = "некорректный формат времени, ожидается HH:MM"
	msgInvalidConfig         = "некорректная конфигурация сетки приема"
)

// clinicDefaultPractitioner значение practitionerId в пути, обозначающее
// дефолтную конфигурацию клиники
const clinicDefaultPractitioner = "default"

// UpdateScheduleRequest HTTP request model
type UpdateScheduleRequest struct {
	DayStartTime        string `json:"dayStartTime"` // "08:00"
	DayEndTime          string `json:"dayEndTime"`   // "18:00"
	SlotIntervalMinutes int    `json:"slotIntervalMinutes"`
}

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

// Handle PUT /api/v1/clinics/{clinicId}/practitioners/{practitionerId}/schedule
// practitionerId == "default" задает дефолтную конфигурацию клиники
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clinicID, err := strconv.ParseInt(vars["clinicId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /schedule - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	practitionerID := vars["practitionerId"]
	if practitionerID == "" {
		handlers.RespondBadRequest(w, msgMissingPractitionerID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	dayStartTime, err := types.NewTimeStringFromString(req.DayStartTime)
	if err != nil {
		h.logger.Warn("PUT /schedule - Invalid day start time: clinic_id=%d, error=%v", clinicID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}
	dayEndTime, err := types.NewTimeStringFromString(req.DayEndTime)
	if err != nil {
		h.logger.Warn("PUT /schedule - Invalid day end time: clinic_id=%d, error=%v", clinicID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	serviceReq := &schedule.UpsertScheduleRequest{
		ClinicID:            clinicID,
		DayStartTime:        dayStartTime,
		DayEndTime:          dayEndTime,
		SlotIntervalMinutes: req.SlotIntervalMinutes,
	}
	if practitionerID != clinicDefaultPractitioner {
		serviceReq.PractitionerID = &practitionerID
	}

	result, err := h.service.Upsert(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidScheduleConfig), errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule - Invalid config: clinic_id=%d, practitioner_id=%s, error=%v",
				clinicID, practitionerID, err)
			handlers.RespondBadRequest(w, msgInvalidConfig)

		default:
			h.logger.Error("PUT /schedule - Failed to upsert schedule: clinic_id=%d, practitioner_id=%s, error=%v",
				clinicID, practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule - Schedule updated: clinic_id=%d, practitioner_id=%s, window=%s-%s, interval=%d",
		clinicID, practitionerID, result.DayStartTime, result.DayEndTime, result.SlotIntervalMinutes)
	handlers.RespondJSON(w, http.StatusOK, result)
}
