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

func SetupSyncRoutes(app *fiber.App, cfg config.Config, db *gorm.DB) {
	repo := repository.NewEmployeeRepository(db)
	guard := auth.NewGuard(cfg.DeviceAuthToken)
	hdl := handler.NewSyncHandler(repo, cfg)

	api := app.Group("/api/device")

	// Auth optional on the directory read: unprovisioned terminals fetch
	// this snapshot to bootstrap themselves.
	api.Get("/sync", middleware.DeviceAuth(guard, false), hdl.GetEmployees)
	api.All("/sync", methodNotAllowed)
}
