package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rs9w-bridge/config"
	"rs9w-bridge/internal/model"
	"rs9w-bridge/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	created []model.AttendanceLog
	err     error
}

func (f *fakeAttendanceRepo) Create(punch *model.AttendanceLog) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, *punch)
	return nil
}

func (f *fakeAttendanceRepo) Recent(limit int) ([]model.AttendanceLog, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit > len(f.created) {
		limit = len(f.created)
	}
	return f.created[:limit], nil
}

func (f *fakeAttendanceRepo) CountByEmployee(code string) (int64, error) {
	var count int64
	for _, p := range f.created {
		if p.EmployeeCode == code {
			count++
		}
	}
	return count, f.err
}

func testConfig() config.Config {
	return config.Config{
		DeviceAuthToken: "test-secret",
		PublicURL:       "http://bridge.test",
		LogListLimit:    50,
	}
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func newAttendanceApp(repo repository.AttendanceLogRepository) *fiber.App {
	hdl := NewAttendanceHandler(repo, testConfig())
	app := fiber.New()
	app.Post("/attendance", hdl.Record)
	app.Get("/attendance/test", hdl.TestInfo)
	app.Post("/attendance/test", hdl.Simulate)
	app.Get("/attendance/logs", hdl.RecentLogs)
	return app
}

func TestNormalizePunchDefaults(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 30, 0, 0, time.Local)

	punch := normalizePunch(PunchRequest{}, now)
	assert.Equal(t, "2026-01-15 08:30:00", punch.LogDatetime)
	assert.Equal(t, "08:30:00", punch.LogTime)
	assert.Empty(t, punch.EmployeeCode, "normalization must not invent an employee code")
	assert.Empty(t, punch.DeviceSN)
}

func TestNormalizePunchDerivesTimeFromDatetime(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 30, 0, 0, time.Local)

	punch := normalizePunch(PunchRequest{LogDatetime: "2026-01-14 22:05:10"}, now)
	assert.Equal(t, "2026-01-14 22:05:10", punch.LogDatetime)
	assert.Equal(t, "22:05:10", punch.LogTime)
}

func TestNormalizePunchCanonicalizesLayouts(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 30, 0, 0, time.Local)

	punch := normalizePunch(PunchRequest{LogDatetime: "2026-01-14T22:05:10"}, now)
	assert.Equal(t, "2026-01-14 22:05:10", punch.LogDatetime)

	punch = normalizePunch(PunchRequest{LogDatetime: "2026-01-14 22:05"}, now)
	assert.Equal(t, "2026-01-14 22:05:00", punch.LogDatetime)
}

func TestNormalizePunchKeepsSuppliedFields(t *testing.T) {
	now := time.Date(2026, 1, 15, 8, 30, 0, 0, time.Local)

	punch := normalizePunch(PunchRequest{
		EmployeeCode: "E007",
		LogDatetime:  "2026-01-14 22:05:10",
		LogTime:      "22:05:11",
		DeviceSN:     "RS9W-0001",
	}, now)
	assert.Equal(t, "E007", punch.EmployeeCode)
	assert.Equal(t, "22:05:11", punch.LogTime, "independently supplied log_time must survive")
	assert.Equal(t, "RS9W-0001", punch.DeviceSN)
}

func TestRecordPersistsOnePunch(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	app := newAttendanceApp(repo)

	payload := `{"employee_code":"E001","log_datetime":"2026-01-15 08:30:00","device_sn":"RS9W-0001"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	require.Len(t, repo.created, 1)
	punch := repo.created[0]
	assert.Equal(t, "E001", punch.EmployeeCode)
	assert.Equal(t, "2026-01-15 08:30:00", punch.LogDatetime)
	assert.Equal(t, "08:30:00", punch.LogTime)
	assert.Equal(t, "RS9W-0001", punch.DeviceSN)
	assert.NotEmpty(t, punch.DownloadedAt, "receipt timestamp is set on ingestion")
}

func TestRecordAcceptsMissingEmployeeCode(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	app := newAttendanceApp(repo)

	req := httptest.NewRequest(http.MethodPost, "/attendance", bytes.NewBufferString(`{"device_sn":"RS9W-0001"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, repo.created, 1)
	assert.Empty(t, repo.created[0].EmployeeCode)
}

func TestRecordDuplicateIsSuccess(t *testing.T) {
	repo := &fakeAttendanceRepo{err: repository.ErrDuplicatePunch}
	app := newAttendanceApp(repo)

	payload := `{"employee_code":"E001","log_datetime":"2026-01-15 08:30:00","device_sn":"RS9W-0001"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Attendance already recorded", body["message"])
}

func TestRecordStoreFailure(t *testing.T) {
	repo := &fakeAttendanceRepo{err: assert.AnError}
	app := newAttendanceApp(repo)

	payload := `{"employee_code":"E001","device_sn":"RS9W-0001"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["error"], "store cause is surfaced for integrators")
}

func TestSimulateEmptyBody(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	app := newAttendanceApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/attendance/test", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])

	received, ok := body["receivedData"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "TEST001", received["employee_code"])
	assert.Equal(t, "RS9W-TEST", received["device_sn"])
	assert.NotEmpty(t, received["log_datetime"])
	assert.NotEmpty(t, received["log_time"])

	assert.Empty(t, repo.created, "simulation must not persist")
}

func TestSimulateEchoesSuppliedFields(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	app := newAttendanceApp(repo)

	payload := `{"employee_code":"E009","log_datetime":"2026-01-15 08:30:00"}`
	req := httptest.NewRequest(http.MethodPost, "/attendance/test", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	received := decodeBody(t, resp)["receivedData"].(map[string]interface{})
	assert.Equal(t, "E009", received["employee_code"])
	assert.Equal(t, "2026-01-15 08:30:00", received["log_datetime"])
	assert.Equal(t, "08:30:00", received["log_time"])
	assert.Equal(t, "RS9W-TEST", received["device_sn"])
	assert.Empty(t, repo.created)
}

func TestTestInfoPayload(t *testing.T) {
	app := newAttendanceApp(&fakeAttendanceRepo{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/attendance/test", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "POST", body["method"])
	assert.NotEmpty(t, body["sample_payload"])
	assert.NotEmpty(t, body["instructions"])
}

func TestRecentLogs(t *testing.T) {
	repo := &fakeAttendanceRepo{created: []model.AttendanceLog{
		{EmployeeCode: "E001", DeviceSN: "RS9W-0001", LogDatetime: "2026-01-15 08:30:00"},
		{EmployeeCode: "E002", DeviceSN: "RS9W-0001", LogDatetime: "2026-01-15 08:31:00"},
	}}
	app := newAttendanceApp(repo)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/attendance/logs", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(2), body["total"])
}
