package apps

import (
	"github.com/gofiber/fiber/v2"
)

// Plugin defines the interface every app must implement.
type Plugin interface {
	// ID returns the unique app identifier.
	ID() string

	// Models returns the list of GORM model pointers for AutoMigrate.
	// Only used when a SQL store is configured.
	Models() []interface{}

	// RegisterRoutes mounts app-specific routes on the given Fiber group.
	// The group is already prefixed with /api and rate limited.
	RegisterRoutes(router fiber.Router)
}
