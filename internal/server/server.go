package server

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/routes"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// bodySlack covers the JSON envelope around the image payload.
const bodySlack = 64 * 1024

// New assembles the Fiber app with global middleware and all routes.
func New(cfg *config.Config, healthHandler *handlers.HealthHandler, plugins []apps.Plugin) *fiber.App {
	bodyLimit := 4 * 1024 * 1024
	if cfg.MaxImageBytes > 0 {
		bodyLimit = cfg.MaxImageBytes + bodySlack
	}

	app := fiber.New(fiber.Config{
		BodyLimit:             bodyLimit,
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: cfg.AppEnv == "test",
	})

	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	app.Use(recover.New())
	app.Use(requestid.New())
	if cfg.AppEnv != "test" {
		app.Use(fiberlogger.New(fiberlogger.Config{
			Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
		}))
	}
	app.Use(middleware.CORS(cfg))
	app.Use(middleware.SecurityHeaders())

	routes.Setup(app, cfg, healthHandler, plugins)

	app.Use(func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Route not found")
	})

	return app
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{
		Error:   true,
		Message: message,
	})
}
