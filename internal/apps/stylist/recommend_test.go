package stylist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveMakeupRecommendations_FourBundlesInOrder(t *testing.T) {
	for _, tone := range []SkinTone{SkinToneLight, SkinToneMedium, SkinToneTan, SkinToneDeep} {
		for _, u := range []Undertone{UndertoneWarm, UndertoneCool, UndertoneNeutral} {
			recs := DeriveMakeupRecommendations(&Analysis{SkinTone: tone, Undertone: u})
			require.Len(t, recs, 4)

			require.Equal(t, CategoryFoundation, recs[0].Category)
			require.Equal(t, FoundationShadesFor(tone, u), recs[0].Shades)
			require.Equal(t, CategoryLipstick, recs[1].Category)
			require.Equal(t, LipstickShadesFor(u), recs[1].Shades)
			require.Equal(t, CategoryBlush, recs[2].Category)
			require.Equal(t, BlushShadesFor(u), recs[2].Shades)
			require.Equal(t, CategoryEyeshadow, recs[3].Category)
			require.Equal(t, EyeshadowShadesFor(u), recs[3].Shades)

			for _, r := range recs {
				require.Empty(t, r.ID)
			}
		}
	}
}

func TestDeriveMakeupRecommendations_UnknownPairDoesNotPanic(t *testing.T) {
	recs := DeriveMakeupRecommendations(&Analysis{SkinTone: "olive", Undertone: "golden"})
	require.Len(t, recs, 4)
	require.Equal(t, foundationShades[SkinToneMedium][UndertoneNeutral], recs[0].Shades)
}

func TestDeriveOutfitRecommendations_FiveOccasions(t *testing.T) {
	want := []Occasion{OccasionCasual, OccasionParty, OccasionFormal, OccasionInterview, OccasionWedding}
	for _, u := range []Undertone{UndertoneWarm, UndertoneCool, UndertoneNeutral, "unknown"} {
		recs := DeriveOutfitRecommendations(&Analysis{Undertone: u})
		require.Len(t, recs, 5)
		for i, r := range recs {
			require.Equal(t, want[i], r.Occasion)
			require.Len(t, r.Colors, 5)
			require.NotEmpty(t, r.Styles)
			require.NotEmpty(t, r.Description)
		}
	}
}

func TestDeriveOutfitRecommendations_IgnoresSkinToneAndFaceShape(t *testing.T) {
	a := DeriveOutfitRecommendations(&Analysis{SkinTone: SkinToneLight, FaceShape: FaceShapeRound, Undertone: UndertoneCool})
	b := DeriveOutfitRecommendations(&Analysis{SkinTone: SkinToneDeep, FaceShape: FaceShapeDiamond, Undertone: UndertoneCool})
	require.Equal(t, a, b)
}

func TestDeriveOutfitRecommendations_WarmInterview(t *testing.T) {
	recs := DeriveOutfitRecommendations(&Analysis{Undertone: UndertoneWarm})

	var interview *OutfitRecommendation
	for i := range recs {
		if recs[i].Occasion == OccasionInterview {
			interview = &recs[i]
		}
	}
	require.NotNil(t, interview)
	require.Equal(t, []string{"#2C3E50", "#FFFFFF", "#8B6F66", "#9B8B6C", "#8B7D6B"}, interview.Colors)
	require.Equal(t, []string{"Professional", "Polished", "Conservative"}, interview.Styles)
}

func TestDeriveOutfitRecommendations_UnknownUndertoneUsesNeutralAdvice(t *testing.T) {
	got := DeriveOutfitRecommendations(&Analysis{Undertone: "golden"})
	want := DeriveOutfitRecommendations(&Analysis{Undertone: UndertoneNeutral})
	require.Equal(t, want, got)
}
