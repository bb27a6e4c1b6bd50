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

func SetupAttendanceRoutes(app *fiber.App, cfg config.Config, db *gorm.DB) {
	repo := repository.NewAttendanceLogRepository(db)
	guard := auth.NewGuard(cfg.DeviceAuthToken)
	hdl := handler.NewAttendanceHandler(repo, cfg)

	api := app.Group("/api/device/attendance")

	// Diagnostic endpoint: no auth, never persists.
	api.Get("/test", hdl.TestInfo)
	api.Post("/test", hdl.Simulate)
	api.All("/test", methodNotAllowed)

	api.Get("/logs", middleware.DeviceAuth(guard, true), hdl.RecentLogs)
	api.All("/logs", methodNotAllowed)

	api.Post("/", middleware.DeviceAuth(guard, true), hdl.Record)
	api.All("/", methodNotAllowed)
}
