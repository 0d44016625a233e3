package ai

import (
	"context"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/config"
)

// Providers holds the configured analysis and chat chains.
type Providers struct {
	Analyzer  *AnalyzerChain
	Responder *ResponderChain

	gemini *GeminiClient
}

// NewProviders builds the chains from configuration. Analysis tries Gemini
// then GLM vision; chat tries Gemini, DeepSeek and GLM in that order.
// Providers without credentials are skipped.
func NewProviders(ctx context.Context, cfg *config.Config) *Providers {
	p := &Providers{
		Analyzer:  &AnalyzerChain{},
		Responder: &ResponderChain{},
	}

	if cfg.GeminiAPIKey != "" {
		g, err := NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiVisionModel, cfg.GeminiChatModel, cfg.AITimeout)
		if err != nil {
			slog.Warn("gemini provider disabled", "error", err)
		} else {
			p.gemini = g
			p.Analyzer.Add("gemini", g)
			p.Responder.Add("gemini", g)
		}
	}

	if cfg.GLMAPIKey != "" {
		p.Analyzer.Add("glm", NewCompletionsClient("GLM", cfg.GLMAPIURL, cfg.GLMAPIKey, cfg.GLMVisionModel, true, cfg.AITimeout))
	}
	if cfg.DeepSeekAPIKey != "" {
		p.Responder.Add("deepseek", NewCompletionsClient("DeepSeek", cfg.DeepSeekAPIURL, cfg.DeepSeekAPIKey, cfg.DeepSeekModel, false, cfg.AITimeout))
	}
	if cfg.GLMAPIKey != "" {
		p.Responder.Add("glm", NewCompletionsClient("GLM", cfg.GLMAPIURL, cfg.GLMAPIKey, cfg.GLMModel, false, cfg.AITimeout))
	}

	if p.Analyzer.Len() == 0 {
		slog.Warn("no analysis provider configured, photos will use default features")
	}
	if p.Responder.Len() == 0 {
		slog.Warn("no chat provider configured, chat requests will fail")
	}
	return p
}

func (p *Providers) Close() error {
	if p.gemini != nil {
		return p.gemini.Close()
	}
	return nil
}
