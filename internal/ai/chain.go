package ai

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps/stylist"
)

// AnalyzerChain tries each analyzer in order and returns the first success.
type AnalyzerChain struct {
	names     []string
	analyzers []stylist.Analyzer
}

func (c *AnalyzerChain) Add(name string, a stylist.Analyzer) {
	c.names = append(c.names, name)
	c.analyzers = append(c.analyzers, a)
}

func (c *AnalyzerChain) Len() int { return len(c.analyzers) }

func (c *AnalyzerChain) Analyze(ctx context.Context, image []byte, mimeType string) (*stylist.FeatureVector, error) {
	if len(c.analyzers) == 0 {
		return nil, stylist.ErrNoProvider
	}

	var errs []error
	for i, a := range c.analyzers {
		fv, err := a.Analyze(ctx, image, mimeType)
		if err == nil {
			return fv, nil
		}
		slog.WarnContext(ctx, "analysis provider failed", "provider", c.names[i], "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", c.names[i], err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(errs...)
}

// ResponderChain tries each chat responder in order and returns the first success.
type ResponderChain struct {
	names      []string
	responders []stylist.ChatResponder
}

func (c *ResponderChain) Add(name string, r stylist.ChatResponder) {
	c.names = append(c.names, name)
	c.responders = append(c.responders, r)
}

func (c *ResponderChain) Len() int { return len(c.responders) }

func (c *ResponderChain) Respond(ctx context.Context, message string, sc *stylist.StyleContext) (string, error) {
	if len(c.responders) == 0 {
		return "", stylist.ErrNoProvider
	}

	var errs []error
	for i, r := range c.responders {
		reply, err := r.Respond(ctx, message, sc)
		if err == nil {
			return reply, nil
		}
		slog.WarnContext(ctx, "chat provider failed", "provider", c.names[i], "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", c.names[i], err))
		if ctx.Err() != nil {
			break
		}
	}
	return "", errors.Join(errs...)
}
