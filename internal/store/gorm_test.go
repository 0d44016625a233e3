package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps/stylist"
)

func newGormStore(t *testing.T) *GormStore {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&stylist.Analysis{}, &stylist.MakeupRecommendation{}, &stylist.OutfitRecommendation{}))
	return NewGormStore(db)
}

func TestGormStore_AnalysisRoundTrip(t *testing.T) {
	s := newGormStore(t)
	ctx := context.Background()
	a := newAnalysis(t, stylist.UndertoneWarm, time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC))
	a.ImageData = "data:image/jpeg;base64,AAAA"

	require.NoError(t, s.SaveAnalysisBundle(ctx, a, nil, nil))
	got, err := s.GetAnalysis(ctx, a.ID)
	require.NoError(t, err)

	require.Equal(t, a.ID, got.ID)
	require.Equal(t, a.ImageData, got.ImageData)
	require.Equal(t, a.SkinTone, got.SkinTone)
	require.Equal(t, a.Undertone, got.Undertone)
	require.Equal(t, a.FaceShape, got.FaceShape)
	require.Equal(t, a.HairColor, got.HairColor)
	require.Equal(t, a.EyeColor, got.EyeColor)
	require.Equal(t, a.Confidence, got.Confidence)
	require.Equal(t, a.ColorPalette, got.ColorPalette)
	require.True(t, a.Timestamp.Equal(got.Timestamp))
}

func TestGormStore_NotFound(t *testing.T) {
	s := newGormStore(t)
	ctx := context.Background()

	_, err := s.GetAnalysis(ctx, uuid.NewString())
	require.ErrorIs(t, err, stylist.ErrAnalysisNotFound)

	_, err = s.LatestAnalysis(ctx)
	require.ErrorIs(t, err, stylist.ErrAnalysisNotFound)

	all, err := s.ListAnalyses(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestGormStore_ListNewestFirst(t *testing.T) {
	s := newGormStore(t)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	older := newAnalysis(t, stylist.UndertoneWarm, base)
	newer := newAnalysis(t, stylist.UndertoneCool, base.Add(time.Minute))
	require.NoError(t, s.SaveAnalysisBundle(ctx, newer, nil, nil))
	require.NoError(t, s.SaveAnalysisBundle(ctx, older, nil, nil))

	all, err := s.ListAnalyses(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, newer.ID, all[0].ID)

	latest, err := s.LatestAnalysis(ctx)
	require.NoError(t, err)
	require.Equal(t, newer.ID, latest.ID)
}

func TestGormStore_RecommendationsKeepOrder(t *testing.T) {
	s := newGormStore(t)
	ctx := context.Background()
	a := newAnalysis(t, stylist.UndertoneWarm, time.Now().UTC())
	makeup, outfits := newBundle(t, a)
	require.NoError(t, s.SaveAnalysisBundle(ctx, a, makeup, outfits))

	gotMakeup, err := s.ListMakeupRecommendations(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, gotMakeup, 4)
	for i := range makeup {
		require.Equal(t, makeup[i].Category, gotMakeup[i].Category)
		require.Equal(t, makeup[i].Shades, gotMakeup[i].Shades)
	}

	gotOutfits, err := s.ListOutfitRecommendations(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, gotOutfits, 5)
	for i := range outfits {
		require.Equal(t, outfits[i].Occasion, gotOutfits[i].Occasion)
		require.Equal(t, outfits[i].Colors, gotOutfits[i].Colors)
		require.Equal(t, outfits[i].Styles, gotOutfits[i].Styles)
	}

	empty, err := s.ListOutfitRecommendations(ctx, uuid.NewString())
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)
}

func TestGormStore_FailedBundleRollsBack(t *testing.T) {
	s := newGormStore(t)
	ctx := context.Background()

	first := newAnalysis(t, stylist.UndertoneWarm, time.Now().UTC())
	firstMakeup, firstOutfits := newBundle(t, first)
	require.NoError(t, s.SaveAnalysisBundle(ctx, first, firstMakeup, firstOutfits))

	// The last insert of the bundle hits a primary key conflict.
	second := newAnalysis(t, stylist.UndertoneCool, time.Now().UTC().Add(time.Minute))
	makeup, outfits := newBundle(t, second)
	outfits[0].ID = firstOutfits[0].ID
	require.Error(t, s.SaveAnalysisBundle(ctx, second, makeup, outfits))

	_, err := s.GetAnalysis(ctx, second.ID)
	require.ErrorIs(t, err, stylist.ErrAnalysisNotFound)

	gotMakeup, err := s.ListMakeupRecommendations(ctx, second.ID)
	require.NoError(t, err)
	require.Empty(t, gotMakeup)

	latest, err := s.LatestAnalysis(ctx)
	require.NoError(t, err)
	require.Equal(t, first.ID, latest.ID)
}

func TestGormStore_RejectsForeignRecommendation(t *testing.T) {
	s := newGormStore(t)
	ctx := context.Background()

	a := newAnalysis(t, stylist.UndertoneNeutral, time.Now().UTC())
	makeup, outfits := newBundle(t, a)
	makeup[2].AnalysisID = uuid.NewString()
	require.ErrorIs(t, s.SaveAnalysisBundle(ctx, a, makeup, outfits), ErrForeignAnalysis)

	all, err := s.ListAnalyses(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestGormStore_Ping(t *testing.T) {
	require.NoError(t, newGormStore(t).Ping(context.Background()))
}
