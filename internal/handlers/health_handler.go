package handlers

import (
	"context"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/dto"
	"github.com/gofiber/fiber/v2"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store       Pinger
	storeDriver string
	analyzer    bool
	chat        bool
}

func NewHealthHandler(store Pinger, storeDriver string, analyzerConfigured, chatConfigured bool) *HealthHandler {
	return &HealthHandler{
		store:       store,
		storeDriver: storeDriver,
		analyzer:    analyzerConfigured,
		chat:        chatConfigured,
	}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := "ok"
	storeStatus := "ok"
	if err := h.store.Ping(ctx); err != nil {
		slog.ErrorContext(ctx, "store ping failed", "store", h.storeDriver, "error", err)
		status = "degraded"
		storeStatus = "unhealthy"
	}

	code := fiber.StatusOK
	if status != "ok" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(dto.HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Store:     h.storeDriver,
		StoreOK:   storeStatus,
		Analyzer:  h.analyzer,
		Chat:      h.chat,
	})
}
