package handler

import (
	"errors"
	"log"
	"time"

	"rs9w-bridge/config"
	"rs9w-bridge/internal/model"
	"rs9w-bridge/internal/repository"

	"github.com/gofiber/fiber/v2"
)

const (
	punchDatetimeLayout = "2006-01-02 15:04:05"
	punchTimeLayout     = "15:04:05"

	// Placeholders the simulation endpoint fills in so integrators can
	// probe with an empty body.
	testEmployeeCode = "TEST001"
	testDeviceSN     = "RS9W-TEST"
)

type AttendanceHandler struct {
	repo repository.AttendanceLogRepository
	cfg  config.Config
}

func NewAttendanceHandler(repo repository.AttendanceLogRepository, cfg config.Config) *AttendanceHandler {
	return &AttendanceHandler{repo: repo, cfg: cfg}
}

// PunchRequest is the push payload of an RS9W-class terminal. Every field
// is optional on the wire; normalization fills what it can.
type PunchRequest struct {
	EmployeeCode string `json:"employee_code"`
	LogDatetime  string `json:"log_datetime"`
	LogTime      string `json:"log_time"`
	DeviceSN     string `json:"device_sn"`
	DownloadedAt string `json:"downloaded_at"`
}

// Terminals are not consistent about datetime formatting across firmware
// revisions, so try a few layouts before giving up.
var punchDatetimeLayouts = []string{
	punchDatetimeLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
}

func parsePunchDatetime(value string) (time.Time, bool) {
	for _, layout := range punchDatetimeLayouts {
		if parsed, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// normalizePunch canonicalizes timestamps without inventing an employee
// code. log_datetime defaults to now; log_time is derived from
// log_datetime when the terminal omits it. No timezone conversion: the
// punch stays in the terminal's naive local time.
func normalizePunch(req PunchRequest, now time.Time) PunchRequest {
	if req.LogDatetime == "" {
		req.LogDatetime = now.Format(punchDatetimeLayout)
	} else if parsed, ok := parsePunchDatetime(req.LogDatetime); ok {
		req.LogDatetime = parsed.Format(punchDatetimeLayout)
	}
	if req.LogTime == "" {
		if parsed, ok := parsePunchDatetime(req.LogDatetime); ok {
			req.LogTime = parsed.Format(punchTimeLayout)
		} else {
			req.LogTime = now.Format(punchTimeLayout)
		}
	}
	return req
}

// Record persists one punch. Payloads without an employee_code are still
// accepted: the terminal and the directory are only eventually consistent,
// and dropping punches is worse than storing orphans. A retried duplicate
// push is reported as success without a second row.
func (h *AttendanceHandler) Record(c *fiber.Ctx) error {
	var req PunchRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	now := time.Now()
	req = normalizePunch(req, now)
	if req.DownloadedAt == "" {
		req.DownloadedAt = now.Format(punchDatetimeLayout)
	}

	punch := model.AttendanceLog{
		EmployeeCode: req.EmployeeCode,
		LogDatetime:  req.LogDatetime,
		LogTime:      req.LogTime,
		DeviceSN:     req.DeviceSN,
		DownloadedAt: req.DownloadedAt,
	}

	if err := h.repo.Create(&punch); err != nil {
		if errors.Is(err, repository.ErrDuplicatePunch) {
			return c.JSON(fiber.Map{
				"success": true,
				"message": "Attendance already recorded",
				"data":    req,
			})
		}
		log.Printf("attendance insert failed for device %s: %v", req.DeviceSN, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to record attendance",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attendance recorded",
		"data":    req,
	})
}

// TestInfo documents the push contract so integrators can point a browser
// at the endpoint before wiring up a terminal.
func (h *AttendanceHandler) TestInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attendance test endpoint is ready",
		"method":  "POST",
		"sample_payload": PunchRequest{
			EmployeeCode: testEmployeeCode,
			LogDatetime:  "2026-01-15 08:30:00",
			LogTime:      "08:30:00",
			DeviceSN:     testDeviceSN,
		},
		"instructions": "POST a JSON punch to this URL to validate the terminal configuration. Nothing is stored. Point the terminal at /api/device/attendance once the echo looks right.",
	})
}

// Simulate echoes a normalized punch back without touching the store.
// Missing fields are filled with placeholders, so an empty body always
// succeeds.
func (h *AttendanceHandler) Simulate(c *fiber.Ctx) error {
	var req PunchRequest
	// Partial and empty bodies are expected here.
	_ = c.BodyParser(&req)

	req = normalizePunch(req, time.Now())
	if req.EmployeeCode == "" {
		req.EmployeeCode = testEmployeeCode
	}
	if req.DeviceSN == "" {
		req.DeviceSN = testDeviceSN
	}

	return c.JSON(fiber.Map{
		"success":      true,
		"message":      "Test punch received (not stored)",
		"receivedData": req,
	})
}

// RecentLogs lists the newest stored punches for integrator diagnosis.
func (h *AttendanceHandler) RecentLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.cfg.LogListLimit)
	if limit <= 0 || limit > 200 {
		limit = h.cfg.LogListLimit
	}

	punches, err := h.repo.Recent(limit)
	if err != nil {
		log.Printf("attendance listing failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch attendance logs",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attendance logs fetched",
		"total":   len(punches),
		"data":    punches,
	})
}
