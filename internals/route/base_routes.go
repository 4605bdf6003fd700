package routes

import (
	"context"
	"time"

	"hrms_backend/internals/configs"
	"hrms_backend/internals/stores"

	"github.com/gofiber/fiber/v2"
)

const healthPingTimeout = 2 * time.Second

func BaseRoutes(app *fiber.App, st stores.Pinger, cfg configs.Config) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "HRMS Lite API is running"})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
		defer cancel()

		status, dbStatus, httpStatus := "healthy", "connected", fiber.StatusOK
		if err := st.Ping(ctx); err != nil {
			status, dbStatus, httpStatus = "unhealthy", "unreachable", fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         status,
			"database":       dbStatus,
			"store_driver":   cfg.StoreDriver,
			"server_time":    time.Now().UTC().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
