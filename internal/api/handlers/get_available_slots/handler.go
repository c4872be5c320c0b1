package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCS-BookingService/internal/api/handlers"
	"github.com/m04kA/MCS-BookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/MCS-BookingService/internal/usecase/get_available_slots"
)

const (
	msgInvalidClinicID       = "некорректный ID клиники"
	msgMissingPractitionerID = "отсутствует идентификатор врача"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidParams         = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/clinics/{clinicId}/practitioners/{practitionerId}/available-slots?date=YYYY-MM-DD
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	clinicID, err := strconv.ParseInt(vars["clinicId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	practitionerID := vars["practitionerId"]
	if practitionerID == "" {
		handlers.RespondBadRequest(w, msgMissingPractitionerID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /available-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getAvailableSlots.Request{
		ClinicID:       clinicID,
		PractitionerID: practitionerID,
		Date:           date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /available-slots - Invalid input: clinic_id=%d, practitioner_id=%s, error=%v",
				clinicID, practitionerID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrInvalidScheduleConfig):
			// Ошибка конфигурации сетки - это ошибка сервера, а не клиента:
			// пустую сетку вместо нее не возвращаем
			h.logger.Error("GET /available-slots - Invalid schedule config: clinic_id=%d, practitioner_id=%s, error=%v",
				clinicID, practitionerID, err)
			handlers.RespondInternalError(w)

		default:
			h.logger.Error("GET /available-slots - Failed to get slots: clinic_id=%d, practitioner_id=%s, error=%v",
				clinicID, practitionerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /available-slots - Slots retrieved: clinic_id=%d, practitioner_id=%s, date=%s, slots=%d",
		clinicID, practitionerID, date.Format(domain.DateFormat), len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
