package stylist

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestPaletteFor_ReturnsFixedTables(t *testing.T) {
	cases := map[Undertone][]string{
		UndertoneWarm:    {"#E6B89C", "#D4A59A", "#C49186", "#A67B73", "#8B6F66", "#704F4F", "#9B8B6C", "#B8A07E"},
		UndertoneCool:    {"#E8D5E8", "#C4A4C4", "#9B7B9B", "#7A5A7A", "#4A6B8A", "#5C7C8C", "#8CA4B4", "#A8C0D0"},
		UndertoneNeutral: {"#D4C4B0", "#B8A890", "#9C8C78", "#80705C", "#A08070", "#C0A890", "#90A0A8", "#B0B8B0"},
	}
	for u, want := range cases {
		got := PaletteFor(u)
		require.Len(t, got, 8, "undertone %s", u)
		require.Equal(t, want, got, "undertone %s", u)
		for _, c := range got {
			require.Regexp(t, hexColor, c)
		}
	}
}

func TestPaletteFor_UnknownFallsBackToNeutral(t *testing.T) {
	require.Equal(t, PaletteFor(UndertoneNeutral), PaletteFor("olive"))
	require.Equal(t, PaletteFor(UndertoneNeutral), PaletteFor(""))
}

func TestPaletteFor_ReturnsCopy(t *testing.T) {
	p := PaletteFor(UndertoneWarm)
	p[0] = "#000000"
	require.Equal(t, "#E6B89C", PaletteFor(UndertoneWarm)[0])
}

func TestFoundationShadesFor_AllPairs(t *testing.T) {
	for _, tone := range []SkinTone{SkinToneLight, SkinToneMedium, SkinToneTan, SkinToneDeep} {
		for _, u := range []Undertone{UndertoneWarm, UndertoneCool, UndertoneNeutral} {
			shades := FoundationShadesFor(tone, u)
			require.Len(t, shades, 3, "%s/%s", tone, u)
			require.Equal(t, foundationShades[tone][u], shades)
		}
	}
}

func TestFoundationShadesFor_UnknownPairFallsBackToMediumNeutral(t *testing.T) {
	want := foundationShades[SkinToneMedium][UndertoneNeutral]
	require.Equal(t, want, FoundationShadesFor("olive", UndertoneWarm))
	require.Equal(t, want, FoundationShadesFor(SkinToneLight, "golden"))
	require.Equal(t, want, FoundationShadesFor("", ""))
}

func TestShadeTables_UndertoneDispatch(t *testing.T) {
	require.Equal(t, warmLipstick, LipstickShadesFor(UndertoneWarm))
	require.Equal(t, coolBlush, BlushShadesFor(UndertoneCool))
	require.Equal(t, neutralEyeshadow, EyeshadowShadesFor(UndertoneNeutral))

	require.Equal(t, neutralLipstick, LipstickShadesFor("unknown"))
	require.Equal(t, neutralBlush, BlushShadesFor("unknown"))
	require.Equal(t, neutralEyeshadow, EyeshadowShadesFor("unknown"))
}
