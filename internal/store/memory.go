package store

import (
	"context"
	"sort"
	"sync"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps/stylist"
)

// MemoryStore keeps records in insertion-ordered arenas with id lookup maps.
// Records are copied on the way in and out so callers cannot mutate them.
type MemoryStore struct {
	mu sync.RWMutex

	analyses      []stylist.Analysis
	analysisIndex map[string]int

	makeup  []stylist.MakeupRecommendation
	outfits []stylist.OutfitRecommendation

	makeupByAnalysis  map[string][]int
	outfitsByAnalysis map[string][]int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		analysisIndex:     make(map[string]int),
		makeupByAnalysis:  make(map[string][]int),
		outfitsByAnalysis: make(map[string][]int),
	}
}

// SaveAnalysisBundle validates the whole bundle, then appends it under a
// single write lock.
func (s *MemoryStore) SaveAnalysisBundle(_ context.Context, a *stylist.Analysis, makeup []stylist.MakeupRecommendation, outfits []stylist.OutfitRecommendation) error {
	if err := validateBundle(a, makeup, outfits); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.analysisIndex[a.ID]; exists {
		return ErrDuplicateID
	}
	s.analysisIndex[a.ID] = len(s.analyses)
	s.analyses = append(s.analyses, copyAnalysis(*a))

	for _, r := range makeup {
		r.Shades = append([]stylist.MakeupShade(nil), r.Shades...)
		s.makeupByAnalysis[a.ID] = append(s.makeupByAnalysis[a.ID], len(s.makeup))
		s.makeup = append(s.makeup, r)
	}
	for _, r := range outfits {
		s.outfitsByAnalysis[a.ID] = append(s.outfitsByAnalysis[a.ID], len(s.outfits))
		s.outfits = append(s.outfits, copyOutfit(r))
	}
	return nil
}

func (s *MemoryStore) GetAnalysis(_ context.Context, id string) (*stylist.Analysis, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.analysisIndex[id]
	if !ok {
		return nil, stylist.ErrAnalysisNotFound
	}
	a := copyAnalysis(s.analyses[idx])
	return &a, nil
}

func (s *MemoryStore) LatestAnalysis(ctx context.Context) (*stylist.Analysis, error) {
	all, err := s.ListAnalyses(ctx)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, stylist.ErrAnalysisNotFound
	}
	return &all[0], nil
}

// ListAnalyses sorts newest first; equal timestamps fall back to reverse
// insertion order.
func (s *MemoryStore) ListAnalyses(_ context.Context) ([]stylist.Analysis, error) {
	s.mu.RLock()
	out := make([]stylist.Analysis, 0, len(s.analyses))
	for i := len(s.analyses) - 1; i >= 0; i-- {
		out = append(out, copyAnalysis(s.analyses[i]))
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	return out, nil
}

func (s *MemoryStore) ListMakeupRecommendations(_ context.Context, analysisID string) ([]stylist.MakeupRecommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idxs := s.makeupByAnalysis[analysisID]
	out := make([]stylist.MakeupRecommendation, 0, len(idxs))
	for _, i := range idxs {
		r := s.makeup[i]
		r.Shades = append([]stylist.MakeupShade(nil), r.Shades...)
		out = append(out, r)
	}
	return out, nil
}

func (s *MemoryStore) ListOutfitRecommendations(_ context.Context, analysisID string) ([]stylist.OutfitRecommendation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idxs := s.outfitsByAnalysis[analysisID]
	out := make([]stylist.OutfitRecommendation, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, copyOutfit(s.outfits[i]))
	}
	return out, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func copyAnalysis(a stylist.Analysis) stylist.Analysis {
	a.ColorPalette = append([]string(nil), a.ColorPalette...)
	return a
}

func copyOutfit(r stylist.OutfitRecommendation) stylist.OutfitRecommendation {
	r.Colors = append([]string(nil), r.Colors...)
	r.Styles = append([]string(nil), r.Styles...)
	return r
}
