// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"hrms_backend/internals/configs"
	helper "hrms_backend/internals/helpers"
	middlewares "hrms_backend/internals/middlewares"
	logMiddleware "hrms_backend/internals/middlewares/logger"
	routeDetails "hrms_backend/internals/route/details"
	"hrms_backend/internals/stores"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
)

var startTime time.Time

// NewApp merakit fiber.App lengkap: codec JSON, middleware dasar dan semua route.
func NewApp(cfg configs.Config, st stores.Store) *fiber.App {
	app := fiber.New(fiber.Config{
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		// employee_id bebas (spasi, unicode), param harus sudah di-decode
		UnescapePath:          true,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	app.Use(middlewares.RecoveryMiddleware())
	app.Use(middlewares.RequestContext(cfg.RequestTimeout))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	app.Use(middlewares.CorsMiddleware(cfg.CorsOrigins))
	app.Use(logMiddleware.LoggerMiddleware())

	SetupRoutes(app, st, cfg)
	return app
}

func SetupRoutes(app *fiber.App, st stores.Store, cfg configs.Config) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, st, cfg)

	log.Println("[INFO] Mounting HR routes...")
	routeDetails.HRRoutes(app, st, cfg.RateLimitMax)
}
