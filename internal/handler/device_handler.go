package handler

import (
	"log"
	"time"

	"rs9w-bridge/config"
	"rs9w-bridge/internal/model"
	"rs9w-bridge/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type DeviceHandler struct {
	repo repository.DeviceCredentialRepository
	cfg  config.Config
}

func NewDeviceHandler(repo repository.DeviceCredentialRepository, cfg config.Config) *DeviceHandler {
	return &DeviceHandler{repo: repo, cfg: cfg}
}

type EnrollRequest struct {
	DeviceSN string `json:"device_sn"`
}

// Enroll issues a per-device bearer token for one terminal serial. This is
// the out-of-band provisioning step: operators run it once per terminal
// instead of baking the shared secret into every unit. Re-enrolling a
// serial replaces its token.
func (h *DeviceHandler) Enroll(c *fiber.Ctx) error {
	var req EnrollRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if req.DeviceSN == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "device_sn is required",
		})
	}

	jti := uuid.NewString()
	claims := jwt.MapClaims{
		"device_sn": req.DeviceSN,
		"jti":       jti,
		"iat":       time.Now().Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.cfg.DeviceAuthToken))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to issue device token",
			"error":   err.Error(),
		})
	}

	cred, findErr := h.repo.FindBySerial(req.DeviceSN)
	if findErr != nil {
		cred = &model.DeviceCredential{DeviceSN: req.DeviceSN}
	}
	cred.Token = signed
	cred.JTI = jti

	if err := h.repo.Save(cred); err != nil {
		log.Printf("device enrollment failed for %s: %v", req.DeviceSN, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Failed to save device credential",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Device enrolled",
		"device_sn":  req.DeviceSN,
		"auth_token": signed,
	})
}
