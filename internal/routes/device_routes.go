package routes

import (
	"rs9w-bridge/config"
	"rs9w-bridge/internal/auth"
	"rs9w-bridge/internal/handler"
	"rs9w-bridge/internal/middleware"
	"rs9w-bridge/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupDeviceRoutes(app *fiber.App, cfg config.Config, db *gorm.DB) {
	repo := repository.NewDeviceCredentialRepository(db)
	guard := auth.NewGuard(cfg.DeviceAuthToken)
	hdl := handler.NewDeviceHandler(repo, cfg)

	api := app.Group("/api/device")

	api.Post("/enroll", middleware.SharedSecretAuth(guard), hdl.Enroll)
	api.All("/enroll", methodNotAllowed)
}
