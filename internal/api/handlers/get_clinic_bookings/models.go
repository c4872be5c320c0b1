package get_clinic_bookings

import (
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/MCS-BookingService/internal/domain"
	"github.com/m04kA/MCS-BookingService/internal/service/bookings/models"
)

// ToServiceRequest разбирает query параметры фильтра записей клиники.
// Все параметры опциональны: practitionerId, patientId, startDate,
// endDate, status, includeInactive.
func ToServiceRequest(clinicID int64, query url.Values) (*models.GetClinicBookingsRequest, error) {
	req := &models.GetClinicBookingsRequest{
		ClinicID: clinicID,
	}

	if v := query.Get("practitionerId"); v != "" {
		req.PractitionerID = &v
	}
	if v := query.Get("patientId"); v != "" {
		req.PatientID = &v
	}
	if v := query.Get("startDate"); v != "" {
		startDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}
	if v := query.Get("endDate"); v != "" {
		endDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}
	if v := query.Get("status"); v != "" {
		req.Status = &v
	}
	if v := query.Get("includeInactive"); v != "" {
		includeInactive, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeInactive = includeInactive
	}

	return req, nil
}
