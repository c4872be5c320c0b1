package delete_disabled_period

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/MCS-BookingService/internal/api/handlers"
	"github.com/m04kA/MCS-BookingService/internal/service/periods"
)

const (
	msgInvalidClinicID = "некорректный ID клиники"
	msgInvalidPeriodID = "некорректный идентификатор периода"
	msgNotFound        = "период блокировки не найден"
)

type Handler struct {
	service PeriodService
	logger  Logger
}

func NewHandler(service PeriodService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/clinics/{clinicId}/disabled-periods/{periodId}
// Период адресуется стабильным uuid, а не позицией в списке
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clinicID, err := strconv.ParseInt(vars["clinicId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /disabled-periods/{id} - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	periodID, err := uuid.Parse(vars["periodId"])
	if err != nil {
		h.logger.Warn("DELETE /disabled-periods/{id} - Invalid period ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPeriodID)
		return
	}

	err = h.service.Delete(r.Context(), clinicID, periodID)
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrPeriodNotFound):
			h.logger.Warn("DELETE /disabled-periods/{id} - Period not found: clinic_id=%d, period_id=%s",
				clinicID, periodID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /disabled-periods/{id} - Failed to delete period: clinic_id=%d, period_id=%s, error=%v",
				clinicID, periodID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /disabled-periods/{id} - Period deleted: clinic_id=%d, period_id=%s", clinicID, periodID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
