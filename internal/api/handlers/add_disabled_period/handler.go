package add_disabled_period

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCS-BookingService/internal/api/handlers"
	"github.com/m04kA/MCS-BookingService/internal/domain"
	"github.com/m04kA/MCS-BookingService/internal/service/periods"
)

const (
	msgInvalidClinicID    = "некорректный ID клиники"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange       = "дата начала периода позже даты окончания"
	msgInvalidParams      = "некорректные параметры периода"
)

// AddPeriodRequest HTTP request model
type AddPeriodRequest struct {
	StartDate string `json:"startDate"` // "2026-12-24"
	EndDate   string `json:"endDate"`   // "2026-12-31"
	Reason    string `json:"reason"`
}

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

// Handle POST /api/v1/clinics/{clinicId}/disabled-periods
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := strconv.ParseInt(vars["clinicId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /disabled-periods - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	var req AddPeriodRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /disabled-periods - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		h.logger.Warn("POST /disabled-periods - Invalid start date: clinic_id=%d, error=%v", clinicID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}
	endDate, err := time.Parse(domain.DateFormat, req.EndDate)
	if err != nil {
		h.logger.Warn("POST /disabled-periods - Invalid end date: clinic_id=%d, error=%v", clinicID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Add(r.Context(), &periods.AddPeriodRequest{
		ClinicID:  clinicID,
		StartDate: startDate,
		EndDate:   endDate,
		Reason:    req.Reason,
	})
	if err != nil {
		switch {
		case errors.Is(err, periods.ErrInvalidRange):
			h.logger.Warn("POST /disabled-periods - Invalid range: clinic_id=%d, start=%s, end=%s",
				clinicID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, periods.ErrInvalidInput):
			h.logger.Warn("POST /disabled-periods - Invalid input: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("POST /disabled-periods - Failed to add period: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /disabled-periods - Period added: clinic_id=%d, period_id=%s", clinicID, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
