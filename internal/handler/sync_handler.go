package handler

import (
	"fmt"
	"log"
	"time"

	"rs9w-bridge/config"
	"rs9w-bridge/internal/model"
	"rs9w-bridge/internal/repository"

	"github.com/gofiber/fiber/v2"
)

type SyncHandler struct {
	repo repository.EmployeeRepository
	cfg  config.Config
}

func NewSyncHandler(repo repository.EmployeeRepository, cfg config.Config) *SyncHandler {
	return &SyncHandler{repo: repo, cfg: cfg}
}

// EmployeeProjection is the record shape the RS9W firmware understands.
type EmployeeProjection struct {
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Email        string `json:"email"`
	Department   string `json:"department"`
	Designation  string `json:"designation"`
	Phone        string `json:"phone"`
	HireDate     string `json:"hire_date"`
	Status       string `json:"status"`
}

func projectEmployee(e model.Employee) EmployeeProjection {
	return EmployeeProjection{
		EmployeeCode: e.EmployeeID,
		EmployeeName: e.FirstName + " " + e.LastName,
		FirstName:    e.FirstName,
		LastName:     e.LastName,
		Email:        e.Email,
		Department:   e.Department,
		Designation:  e.Designation,
		Phone:        e.Phone,
		HireDate:     e.HireDate,
		Status:       e.Status,
	}
}

// GetEmployees returns the full active-employee snapshot plus the
// machine_instructions block terminals use to configure themselves.
func (h *SyncHandler) GetEmployees(c *fiber.Ctx) error {
	employees, err := h.repo.GetActive()
	if err != nil {
		log.Printf("employee snapshot query failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to fetch employees",
			"error":   err.Error(),
		})
	}

	projections := make([]EmployeeProjection, 0, len(employees))
	for _, e := range employees {
		projections = append(projections, projectEmployee(e))
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"message":         fmt.Sprintf("Found %d active employees", len(projections)),
		"timestamp":       time.Now().Format(time.RFC3339),
		"total_employees": len(projections),
		"employees":       projections,
		"machine_instructions": fiber.Map{
			"sync_url":       h.cfg.PublicURL + "/api/device/sync",
			"attendance_url": h.cfg.PublicURL + "/api/device/attendance",
			"auth_token":     h.cfg.DeviceAuthToken,
		},
	})
}
