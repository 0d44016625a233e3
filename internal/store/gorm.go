package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps/stylist"
	"gorm.io/gorm"
)

var (
	ErrMissingID       = errors.New("record id is required")
	ErrDuplicateID     = errors.New("record id already exists")
	ErrForeignAnalysis = errors.New("recommendation belongs to a different analysis")
)

// validateBundle checks every record of a bundle before anything is written.
func validateBundle(a *stylist.Analysis, makeup []stylist.MakeupRecommendation, outfits []stylist.OutfitRecommendation) error {
	if a == nil || a.ID == "" {
		return ErrMissingID
	}
	seen := map[string]struct{}{a.ID: {}}
	check := func(id, analysisID string) error {
		if id == "" {
			return ErrMissingID
		}
		if analysisID != a.ID {
			return ErrForeignAnalysis
		}
		if _, dup := seen[id]; dup {
			return ErrDuplicateID
		}
		seen[id] = struct{}{}
		return nil
	}
	for _, r := range makeup {
		if err := check(r.ID, r.AnalysisID); err != nil {
			return err
		}
	}
	for _, r := range outfits {
		if err := check(r.ID, r.AnalysisID); err != nil {
			return err
		}
	}
	return nil
}

// GormStore persists records through GORM. Tables are created by the
// stylist plugin's Models via database.MigrateModels.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// SaveAnalysisBundle inserts the analysis and its recommendations in one
// transaction.
func (s *GormStore) SaveAnalysisBundle(ctx context.Context, a *stylist.Analysis, makeup []stylist.MakeupRecommendation, outfits []stylist.OutfitRecommendation) error {
	if err := validateBundle(a, makeup, outfits); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return fmt.Errorf("failed to create analysis: %w", err)
		}
		if len(makeup) > 0 {
			if err := tx.Create(&makeup).Error; err != nil {
				return fmt.Errorf("failed to create makeup recommendations: %w", err)
			}
		}
		if len(outfits) > 0 {
			if err := tx.Create(&outfits).Error; err != nil {
				return fmt.Errorf("failed to create outfit recommendations: %w", err)
			}
		}
		return nil
	})
}

func (s *GormStore) GetAnalysis(ctx context.Context, id string) (*stylist.Analysis, error) {
	var a stylist.Analysis
	if err := s.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stylist.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to fetch analysis: %w", err)
	}
	return &a, nil
}

func (s *GormStore) LatestAnalysis(ctx context.Context) (*stylist.Analysis, error) {
	var a stylist.Analysis
	if err := s.db.WithContext(ctx).Order("timestamp DESC").First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, stylist.ErrAnalysisNotFound
		}
		return nil, fmt.Errorf("failed to fetch latest analysis: %w", err)
	}
	return &a, nil
}

func (s *GormStore) ListAnalyses(ctx context.Context) ([]stylist.Analysis, error) {
	var analyses []stylist.Analysis
	if err := s.db.WithContext(ctx).Order("timestamp DESC").Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch analyses: %w", err)
	}
	return analyses, nil
}

func (s *GormStore) ListMakeupRecommendations(ctx context.Context, analysisID string) ([]stylist.MakeupRecommendation, error) {
	recs := []stylist.MakeupRecommendation{}
	if err := s.db.WithContext(ctx).
		Where("analysis_id = ?", analysisID).
		Order("position ASC").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch makeup recommendations: %w", err)
	}
	return recs, nil
}

func (s *GormStore) ListOutfitRecommendations(ctx context.Context, analysisID string) ([]stylist.OutfitRecommendation, error) {
	recs := []stylist.OutfitRecommendation{}
	if err := s.db.WithContext(ctx).
		Where("analysis_id = ?", analysisID).
		Order("position ASC").
		Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch outfit recommendations: %w", err)
	}
	return recs, nil
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
