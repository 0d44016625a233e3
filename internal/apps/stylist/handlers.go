package stylist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/dto"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
)

type StylistHandler struct {
	service       *StylistService
	maxImageBytes int
}

func NewStylistHandler(service *StylistService, maxImageBytes int) *StylistHandler {
	return &StylistHandler{service: service, maxImageBytes: maxImageBytes}
}

// Analyze handles POST /api/analyze
func (h *StylistHandler) Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if strings.TrimSpace(req.ImageData) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Image data is required",
		})
	}
	if h.maxImageBytes > 0 && len(req.ImageData) > h.maxImageBytes {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: fmt.Sprintf("Image data too large. Maximum %d bytes.", h.maxImageBytes),
		})
	}

	analysis, err := h.service.AnalyzePhoto(requestContext(c), req.ImageData)
	if err != nil {
		return respondError(c, err, "Failed to analyze image")
	}

	return c.JSON(analysis)
}

// GetAnalysis handles GET /api/analysis/:id
func (h *StylistHandler) GetAnalysis(c *fiber.Ctx) error {
	analysis, err := h.service.GetAnalysis(requestContext(c), c.Params("id"))
	if err != nil {
		return respondError(c, err, "Failed to get analysis")
	}
	return c.JSON(analysis)
}

// GetMakeup handles GET /api/makeup/:analysisId
func (h *StylistHandler) GetMakeup(c *fiber.Ctx) error {
	recs, err := h.service.GetMakeupRecommendations(requestContext(c), c.Params("analysisId"))
	if err != nil {
		return respondError(c, err, "Failed to get makeup recommendations")
	}
	return c.JSON(recs)
}

// GetOutfits handles GET /api/outfits/:analysisId
func (h *StylistHandler) GetOutfits(c *fiber.Ctx) error {
	recs, err := h.service.GetOutfitRecommendations(requestContext(c), c.Params("analysisId"))
	if err != nil {
		return respondError(c, err, "Failed to get outfit recommendations")
	}
	return c.JSON(recs)
}

// Chat handles POST /api/chat
func (h *StylistHandler) Chat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Content) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Message content is required",
		})
	}

	msg, err := h.service.Chat(requestContext(c), req.Content)
	if err != nil {
		return respondError(c, err, "Failed to generate response")
	}
	return c.JSON(msg)
}

// GetProfile handles GET /api/profile
func (h *StylistHandler) GetProfile(c *fiber.Ctx) error {
	profile, err := h.service.GetProfile(requestContext(c))
	if err != nil {
		return respondError(c, err, "Failed to get profile")
	}
	return c.JSON(profile)
}

// respondError maps domain errors to status codes. 5xx responses never carry
// the underlying error text.
func respondError(c *fiber.Ctx, err error, fallback string) error {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: verr.Error(),
		})
	case errors.Is(err, ErrAnalysisNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Analysis not found",
		})
	}

	slog.ErrorContext(c.UserContext(), "request failed",
		"request_id", requestID(c),
		"method", c.Method(),
		"path", c.Path(),
		"error", err.Error(),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: fallback,
	})
}

// requestContext carries the request's Sentry hub into the service layer.
func requestContext(c *fiber.Ctx) context.Context {
	ctx := c.UserContext()
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		ctx = sentry.SetHubOnContext(ctx, hub)
	}
	return ctx
}

func requestID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return ""
}
