package routes

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/handlers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	plugins []apps.Plugin,
) {
	api := app.Group("/api")

	// General API rate limiter, per IP
	limit := cfg.RateLimitPerMinute
	if limit <= 0 {
		limit = 60
	}
	api.Use(limiter.New(limiter.Config{
		Max:               limit,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	for _, p := range plugins {
		p.RegisterRoutes(api)
	}
}
