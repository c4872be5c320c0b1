package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/MCS-BookingService/internal/usecase/get_available_slots"
)

type fakeUseCase struct {
	resp *getAvailableSlots.Response
	err  error

	gotReq *getAvailableSlots.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(h *Handler, target string, vars map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, vars)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandleReturnsSlots(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date:           time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC),
		ClinicID:       10,
		PractitionerID: "dr-petit",
		Slots: []getAvailableSlots.Slot{
			{StartTime: "09:00", OrderNumber: 1, Reserved: false},
			{StartTime: "09:30", OrderNumber: 2, Reserved: true},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/clinics/10/practitioners/dr-petit/available-slots?date=2026-09-15",
		map[string]string{"clinicId": "10", "practitionerId": "dr-petit"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp DaySlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "2026-09-15", resp.Date)
	assert.False(t, resp.DayBlocked)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, SlotResponse{StartTime: "09:30", OrderNumber: 2, Reserved: true}, resp.Slots[1])

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(10), uc.gotReq.ClinicID)
	assert.Equal(t, "dr-petit", uc.gotReq.PractitionerID)
}

func TestHandleRejectsBadParams(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rec := doRequest(h, "/api/v1/clinics/abc/practitioners/dr-petit/available-slots?date=2026-09-15",
		map[string]string{"clinicId": "abc", "practitionerId": "dr-petit"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, "/api/v1/clinics/10/practitioners/dr-petit/available-slots?date=15-09-2026",
		map[string]string{"clinicId": "10", "practitionerId": "dr-petit"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleConfigErrorIs500(t *testing.T) {
	uc := &fakeUseCase{err: getAvailableSlots.ErrInvalidScheduleConfig}
	h := NewHandler(uc, nopLogger{})

	rec := doRequest(h, "/api/v1/clinics/10/practitioners/dr-petit/available-slots?date=2026-09-15",
		map[string]string{"clinicId": "10", "practitionerId": "dr-petit"})

	// Сломанная конфигурация - это не пустая сетка и не ошибка клиента
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
