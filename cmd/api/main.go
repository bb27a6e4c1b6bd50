package main

import (
	"fmt"
	"log"

	"rs9w-bridge/config"
	"rs9w-bridge/internal/handler"
	"rs9w-bridge/internal/middleware"
	"rs9w-bridge/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables.")
	}

	cfg := config.Load()
	db := config.ConnectDB(cfg)

	app := fiber.New()

	// Global middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(logger.New())

	// The device protocol additionally wants its header triad on every
	// response and a bodyless 200 for OPTIONS, preflight or not.
	app.Use("/api/device", middleware.DeviceCORS())

	app.Get("/health", handler.Health)

	routes.SetupSyncRoutes(app, cfg, db)
	routes.SetupAttendanceRoutes(app, cfg, db)
	routes.SetupDeviceRoutes(app, cfg, db)

	log.Printf("rs9w-bridge listening on :%s", cfg.Port)
	app.Listen(":" + cfg.Port)
}
