package stylist

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type StylistPlugin struct {
	service *StylistService
	cfg     *config.Config
}

func New(store Store, analyzer Analyzer, responder ChatResponder, cfg *config.Config) *StylistPlugin {
	return &StylistPlugin{
		service: NewStylistService(store, analyzer, responder, cfg),
		cfg:     cfg,
	}
}

func (p *StylistPlugin) ID() string { return "stylist" }

func (p *StylistPlugin) Models() []interface{} {
	return []interface{}{
		&Analysis{},
		&MakeupRecommendation{},
		&OutfitRecommendation{},
	}
}

func (p *StylistPlugin) Service() *StylistService { return p.service }

func (p *StylistPlugin) RegisterRoutes(router fiber.Router) {
	handler := NewStylistHandler(p.service, p.cfg.MaxImageBytes)

	// Analyze-specific rate limit (stricter, calls a vision model)
	analyzeLimit := p.cfg.AnalyzeRateLimitPerMinute
	if analyzeLimit <= 0 {
		analyzeLimit = 10
	}
	router.Post("/analyze", limiter.New(limiter.Config{
		Max:               analyzeLimit,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}), handler.Analyze)

	router.Get("/analysis/:id", handler.GetAnalysis)
	router.Get("/makeup/:analysisId", handler.GetMakeup)
	router.Get("/outfits/:analysisId", handler.GetOutfits)
	router.Post("/chat", handler.Chat)
	router.Get("/profile", handler.GetProfile)
}
