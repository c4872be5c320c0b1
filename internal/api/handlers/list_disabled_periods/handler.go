package list_disabled_periods

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCS-BookingService/internal/api/handlers"
)

const (
	msgInvalidClinicID = "некорректный ID клиники"
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

// Handle GET /api/v1/clinics/{clinicId}/disabled-periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := strconv.ParseInt(vars["clinicId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /disabled-periods - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	result, err := h.service.List(r.Context(), clinicID)
	if err != nil {
		h.logger.Error("GET /disabled-periods - Failed to list periods: clinic_id=%d, error=%v", clinicID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /disabled-periods - Periods retrieved: clinic_id=%d, total=%d", clinicID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
