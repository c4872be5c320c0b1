package create_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MCS-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/MCS-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidClinicID      = "некорректный ID клиники"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDateOrTime    = "некорректный формат даты записи или времени слота"
	msgMissingFields        = "не заполнены обязательные поля"
	msgInvalidPhone         = "некорректный формат телефона"
	msgInvalidBirthDate     = "некорректная дата рождения"
	msgDateUnavailable      = "запись на выбранную дату закрыта"
	msgInvalidTimeSlot      = "время не соответствует сетке приема врача"
	msgSlotTaken            = "выбранный слот уже занят"
	msgDuplicateBooking     = "у пациента уже есть запись к этому врачу на эту дату"
	msgPatientIDConflict    = "идентификатор пациента принадлежит другому человеку"
	msgScheduleConfigBroken = "конфигурация сетки приема некорректна"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/clinics/{clinicId}/bookings
// Публичный endpoint - пациент записывается сам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	clinicID, err := strconv.ParseInt(vars["clinicId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid clinic ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidClinicID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clinicID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: clinic_id=%d, error=%v", clinicID, err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrMissingFields):
			h.logger.Warn("POST /bookings - Missing fields: clinic_id=%d", clinicID)
			handlers.RespondBadRequest(w, msgMissingFields)

		case errors.Is(err, createBooking.ErrInvalidPhone):
			h.logger.Warn("POST /bookings - Invalid phone: clinic_id=%d", clinicID)
			handlers.RespondBadRequest(w, msgInvalidPhone)

		case errors.Is(err, createBooking.ErrInvalidBirthDate):
			h.logger.Warn("POST /bookings - Invalid birth date: clinic_id=%d", clinicID)
			handlers.RespondBadRequest(w, msgInvalidBirthDate)

		case errors.Is(err, createBooking.ErrDateUnavailable):
			h.logger.Warn("POST /bookings - Date unavailable: clinic_id=%d, date=%s", clinicID, req.BookingDate)
			handlers.RespondBadRequest(w, msgDateUnavailable)

		case errors.Is(err, createBooking.ErrInvalidTimeSlot):
			h.logger.Warn("POST /bookings - Invalid time slot: clinic_id=%d, start_time=%s", clinicID, req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: clinic_id=%d, practitioner_id=%s, date=%s, start_time=%s",
				clinicID, req.PractitionerID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrDuplicateBooking):
			h.logger.Warn("POST /bookings - Duplicate booking: clinic_id=%d, patient_id=%s, date=%s",
				clinicID, req.PatientID, req.BookingDate)
			handlers.RespondConflict(w, msgDuplicateBooking)

		case errors.Is(err, createBooking.ErrPatientIDConflict):
			h.logger.Warn("POST /bookings - Patient ID conflict: clinic_id=%d, patient_id=%s", clinicID, req.PatientID)
			handlers.RespondConflict(w, msgPatientIDConflict)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: clinic_id=%d, error=%v", clinicID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrInvalidScheduleConfig):
			// Ошибка конфигурации - проблема на стороне клиники, а не пациента
			h.logger.Error("POST /bookings - Invalid schedule config: clinic_id=%d, practitioner_id=%s, error=%v",
				clinicID, req.PractitionerID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgScheduleConfigBroken)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: clinic_id=%d, patient_id=%s, error=%v",
				clinicID, req.PatientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, clinic_id=%d, patient_id=%s, status=%s",
		result.ID, clinicID, result.PatientID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
