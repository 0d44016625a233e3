package stylist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/media"
	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

const (
	savedPaletteLimit = 3
	defaultChatReply  = "I'm here to help with your styling questions!"
)

// Store is the persistence capability set the service needs. Records are
// insert-only; nothing is updated in place.
type Store interface {
	// SaveAnalysisBundle writes an analysis and its recommendations atomically:
	// either all three are visible afterwards or none are.
	SaveAnalysisBundle(ctx context.Context, a *Analysis, makeup []MakeupRecommendation, outfits []OutfitRecommendation) error

	GetAnalysis(ctx context.Context, id string) (*Analysis, error)
	LatestAnalysis(ctx context.Context) (*Analysis, error)
	// ListAnalyses returns analyses newest first.
	ListAnalyses(ctx context.Context) ([]Analysis, error)

	ListMakeupRecommendations(ctx context.Context, analysisID string) ([]MakeupRecommendation, error)
	ListOutfitRecommendations(ctx context.Context, analysisID string) ([]OutfitRecommendation, error)

	Ping(ctx context.Context) error
}

// Analyzer extracts a feature vector from an image. Decodable uploads arrive
// as prepared JPEG; anything else is passed through with its declared type.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (*FeatureVector, error)
}

// ChatResponder produces styling advice; sc is nil when no analysis exists.
type ChatResponder interface {
	Respond(ctx context.Context, message string, sc *StyleContext) (string, error)
}

type StylistService struct {
	store     Store
	analyzer  Analyzer
	responder ChatResponder
	maxEdge   int
	now       func() time.Time
}

func NewStylistService(store Store, analyzer Analyzer, responder ChatResponder, cfg *config.Config) *StylistService {
	maxEdge := media.DefaultMaxEdge
	if cfg != nil && cfg.AnalyzeMaxEdge > 0 {
		maxEdge = cfg.AnalyzeMaxEdge
	}
	return &StylistService{
		store:     store,
		analyzer:  analyzer,
		responder: responder,
		maxEdge:   maxEdge,
		now:       func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// AnalyzePhoto never fails because of the analyzer: any analyzer error or
// invalid output is replaced by DefaultFeatures.
func (s *StylistService) AnalyzePhoto(ctx context.Context, imageData string) (*Analysis, error) {
	if strings.TrimSpace(imageData) == "" {
		return nil, &ValidationError{Field: "imageData", Reason: "is required"}
	}

	var analysis *Analysis
	features, err := s.detectFeatures(ctx, imageData)
	if err == nil {
		analysis, err = buildAnalysisAt(*features, imageData, s.now())
		if err != nil {
			err = &CollaboratorError{Collaborator: "analyzer", Err: fmt.Errorf("malformed response: %w", err)}
		}
	}
	if err != nil {
		slog.Warn("image analysis failed, using default features", "error", err)
		reportError(ctx, err)
		analysis, err = buildAnalysisAt(DefaultFeatures, imageData, s.now())
		if err != nil {
			return nil, fmt.Errorf("failed to build default analysis: %w", err)
		}
	}

	makeup := DeriveMakeupRecommendations(analysis)
	for i := range makeup {
		makeup[i].ID = uuid.NewString()
		makeup[i].AnalysisID = analysis.ID
		makeup[i].Position = i
	}

	outfits := DeriveOutfitRecommendations(analysis)
	for i := range outfits {
		outfits[i].ID = uuid.NewString()
		outfits[i].AnalysisID = analysis.ID
		outfits[i].Position = i
	}

	if err := s.store.SaveAnalysisBundle(ctx, analysis, makeup, outfits); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	slog.Info("analysis created",
		"analysis_id", analysis.ID,
		"skin_tone", analysis.SkinTone,
		"undertone", analysis.Undertone,
		"confidence", analysis.Confidence,
	)
	return analysis, nil
}

func (s *StylistService) detectFeatures(ctx context.Context, imageData string) (*FeatureVector, error) {
	if s.analyzer == nil {
		return nil, &CollaboratorError{Collaborator: "analyzer", Err: ErrNoProvider}
	}

	upload, err := media.DecodeDataURI(imageData)
	if err != nil {
		return nil, &CollaboratorError{Collaborator: "analyzer", Err: err}
	}
	payload, mimeType := upload.Data, upload.MIMEType
	if prepared, err := media.PrepareForAnalysis(upload.Data, s.maxEdge); err == nil {
		payload, mimeType = prepared, "image/jpeg"
	} else {
		// The model may still understand formats we cannot decode.
		slog.Warn("image preprocessing failed, forwarding original bytes",
			"mime_type", upload.MIMEType,
			"error", err,
		)
	}

	slog.Debug("analyzing image", "image_digest", media.Fingerprint(upload.Data), "mime_type", mimeType, "bytes", len(payload))

	features, err := s.analyzer.Analyze(ctx, payload, mimeType)
	if err != nil {
		return nil, &CollaboratorError{Collaborator: "analyzer", Err: err}
	}
	if features == nil {
		return nil, &CollaboratorError{Collaborator: "analyzer", Err: errors.New("empty response")}
	}
	return features, nil
}

func (s *StylistService) GetAnalysis(ctx context.Context, id string) (*Analysis, error) {
	return s.store.GetAnalysis(ctx, id)
}

func (s *StylistService) GetMakeupRecommendations(ctx context.Context, analysisID string) ([]MakeupRecommendation, error) {
	recs, err := s.store.ListMakeupRecommendations(ctx, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch makeup recommendations: %w", err)
	}
	if recs == nil {
		recs = []MakeupRecommendation{}
	}
	return recs, nil
}

func (s *StylistService) GetOutfitRecommendations(ctx context.Context, analysisID string) ([]OutfitRecommendation, error) {
	recs, err := s.store.ListOutfitRecommendations(ctx, analysisID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch outfit recommendations: %w", err)
	}
	if recs == nil {
		recs = []OutfitRecommendation{}
	}
	return recs, nil
}

// Chat is stateless. The most recent analysis across the whole store is used
// as grounding, which assumes a single tenant.
func (s *StylistService) Chat(ctx context.Context, content string) (*ChatMessage, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, &ValidationError{Field: "content", Reason: "is required"}
	}

	var sc *StyleContext
	latest, err := s.store.LatestAnalysis(ctx)
	switch {
	case err == nil:
		sc = &StyleContext{SkinTone: latest.SkinTone, Undertone: latest.Undertone, FaceShape: latest.FaceShape}
	case errors.Is(err, ErrAnalysisNotFound):
	default:
		return nil, fmt.Errorf("failed to load latest analysis: %w", err)
	}

	if s.responder == nil {
		err := &CollaboratorError{Collaborator: "chat responder", Err: ErrNoProvider}
		reportError(ctx, err)
		return nil, err
	}

	reply, err := s.responder.Respond(ctx, content, sc)
	if err != nil {
		cerr := &CollaboratorError{Collaborator: "chat responder", Err: err}
		reportError(ctx, cerr)
		return nil, cerr
	}
	if strings.TrimSpace(reply) == "" {
		reply = defaultChatReply
	}

	return &ChatMessage{
		ID:        uuid.NewString(),
		Role:      RoleAssistant,
		Content:   reply,
		Timestamp: s.now(),
	}, nil
}

// GetProfile derives the profile; saved palettes are the palettes of the
// most recent analyses, there is no explicit save action.
func (s *StylistService) GetProfile(ctx context.Context) (*UserProfile, error) {
	analyses, err := s.store.ListAnalyses(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch analyses: %w", err)
	}
	if analyses == nil {
		analyses = []Analysis{}
	}

	n := min(len(analyses), savedPaletteLimit)
	palettes := make([][]string, 0, n)
	for _, a := range analyses[:n] {
		palettes = append(palettes, a.ColorPalette)
	}

	return &UserProfile{Analyses: analyses, SavedPalettes: palettes}, nil
}

func (s *StylistService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func reportError(ctx context.Context, err error) {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	hub.CaptureException(err)
}
