package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/residenhealth/patient-sync-api/internal/model"
	"github.com/residenhealth/patient-sync-api/internal/service/appointment"
	"github.com/residenhealth/patient-sync-api/pkg/logger"
	"github.com/residenhealth/patient-sync-api/pkg/metrics"
)

var testMetrics = metrics.NewMetrics("appointment_handler_test")

type fakeAppointments struct {
	rows int64
	err  error
	list []*model.Appointment
}

func (f *fakeAppointments) Replace(_ context.Context, _, _ int64, _ *model.UpdateAppointmentRequest) (int64, error) {
	return f.rows, f.err
}

func (f *fakeAppointments) List(_ context.Context, _ *model.AppointmentFilters) ([]*model.Appointment, error) {
	return f.list, f.err
}

type fakeEncounters struct{}

func (fakeEncounters) Get(_ context.Context, _ int64) (*model.Encounter, error) {
	return nil, errors.New("not implemented")
}
func (fakeEncounters) FindMostRecent(_ context.Context, _ int64, _ string) (int64, error) {
	return 0, nil
}

type fakeTracker struct{}

func (fakeTracker) Create(_ context.Context, _ *model.TrackerEntry) error { return nil }

type fakeClassifier struct{}

func (fakeClassifier) IsCheckIn(_ context.Context, _ string) (bool, error) { return false, nil }

func newTestRouter(appts *fakeAppointments) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := appointment.NewService(appts, fakeEncounters{}, fakeTracker{}, fakeClassifier{},
		logger.NewLogger(nil), testMetrics)
	r := gin.New()
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func validBody() map[string]interface{} {
	return map[string]interface{}{
		"pc_catid":     "5",
		"pc_title":     "Office Visit",
		"pc_duration":  "1800",
		"pc_eventDate": "2025-03-14",
		"pc_startTime": "10:00:00",
		"pc_aid":       "3",
	}
}

func putAppointment(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestUpdateAppointment_Success(t *testing.T) {
	router := newTestRouter(&fakeAppointments{rows: 1})

	w := putAppointment(t, router, "/api/patient/42/appointment/100", validBody())

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "100", resp["eid"])
	assert.Equal(t, "42", resp["pid"])
}

func TestUpdateAppointment_MissingField(t *testing.T) {
	router := newTestRouter(&fakeAppointments{})

	body := validBody()
	delete(body, "pc_catid")

	w := putAppointment(t, router, "/api/patient/42/appointment/100", body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required field: pc_catid", decode(t, w)["error"])
}

func TestUpdateAppointment_InvalidEventID(t *testing.T) {
	router := newTestRouter(&fakeAppointments{})

	w := putAppointment(t, router, "/api/patient/42/appointment/abc", validBody())

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid appointment ID", decode(t, w)["error"])
}

func TestUpdateAppointment_StorageFailure(t *testing.T) {
	router := newTestRouter(&fakeAppointments{err: errors.New("deadlock detected")})

	w := putAppointment(t, router, "/api/patient/42/appointment/100", validBody())

	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Failed to update appointment", resp["error"])
	assert.NotContains(t, w.Body.String(), "deadlock")
}

func TestListAppointments_EmptyResultIsNotNull(t *testing.T) {
	router := newTestRouter(&fakeAppointments{list: nil})

	req := httptest.NewRequest(http.MethodGet, "/api/appointments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestListAppointments_ReturnsBareArray(t *testing.T) {
	router := newTestRouter(&fakeAppointments{list: []*model.Appointment{
		{EventID: 100, PatientID: 42, Title: "Office Visit"},
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/appointments?provider=3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var appointments []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &appointments))
	require.Len(t, appointments, 1)
	assert.Equal(t, float64(100), appointments[0]["pc_eid"])
}
