package stylist

// Lookup tables are keyed by undertone (and skin tone for foundation).
// Unknown keys resolve to the neutral tables, and to (medium, neutral) for
// foundation, so malformed analyzer output degrades instead of failing.
// Callers receive copies; the tables themselves are never handed out.

var (
	warmPalette = []string{
		"#E6B89C", // peach
		"#D4A59A", // coral
		"#C49186", // terracotta
		"#A67B73", // warm brown
		"#8B6F66", // camel
		"#704F4F", // burnt sienna
		"#9B8B6C", // olive
		"#B8A07E", // gold
	}
	coolPalette = []string{
		"#E8D5E8", // lavender
		"#C4A4C4", // mauve
		"#9B7B9B", // purple
		"#7A5A7A", // plum
		"#4A6B8A", // cool blue
		"#5C7C8C", // slate
		"#8CA4B4", // powder blue
		"#A8C0D0", // ice blue
	}
	neutralPalette = []string{
		"#D4C4B0", // beige
		"#B8A890", // taupe
		"#9C8C78", // greige
		"#80705C", // mushroom
		"#A08070", // rose brown
		"#C0A890", // sand
		"#90A0A8", // grey blue
		"#B0B8B0", // sage
	}
)

// PaletteFor returns the 8-color palette for an undertone.
func PaletteFor(u Undertone) []string {
	switch u {
	case UndertoneWarm:
		return clone(warmPalette)
	case UndertoneCool:
		return clone(coolPalette)
	default:
		return clone(neutralPalette)
	}
}

var foundationShades = map[SkinTone]map[Undertone][]MakeupShade{
	SkinToneLight: {
		UndertoneWarm: {
			{Name: "Ivory Beige", Hex: "#F5E6D3", Finish: "Matte"},
			{Name: "Warm Porcelain", Hex: "#F0DCC4", Finish: "Dewy"},
			{Name: "Light Golden", Hex: "#EDD4B8", Finish: "Natural"},
		},
		UndertoneCool: {
			{Name: "Porcelain Pink", Hex: "#F5E6E8", Finish: "Matte"},
			{Name: "Cool Ivory", Hex: "#F0E6EA", Finish: "Dewy"},
			{Name: "Light Rose", Hex: "#EDD8DC", Finish: "Natural"},
		},
		UndertoneNeutral: {
			{Name: "Natural Ivory", Hex: "#F5E6DC", Finish: "Matte"},
			{Name: "Neutral Porcelain", Hex: "#F0DCD8", Finish: "Dewy"},
			{Name: "Light Neutral", Hex: "#EDD4D0", Finish: "Natural"},
		},
	},
	SkinToneMedium: {
		UndertoneWarm: {
			{Name: "Warm Beige", Hex: "#E6B89C", Finish: "Matte"},
			{Name: "Golden Sand", Hex: "#D4A590", Finish: "Dewy"},
			{Name: "Honey", Hex: "#C49884", Finish: "Natural"},
		},
		UndertoneCool: {
			{Name: "Cool Beige", Hex: "#E6C4C8", Finish: "Matte"},
			{Name: "Rose Beige", Hex: "#D4B0B8", Finish: "Dewy"},
			{Name: "Neutral Tan", Hex: "#C4A0A8", Finish: "Natural"},
		},
		UndertoneNeutral: {
			{Name: "True Beige", Hex: "#E6C0B0", Finish: "Matte"},
			{Name: "Neutral Sand", Hex: "#D4AC98", Finish: "Dewy"},
			{Name: "Natural Tan", Hex: "#C49C88", Finish: "Natural"},
		},
	},
	SkinToneTan: {
		UndertoneWarm: {
			{Name: "Warm Tan", Hex: "#C49186", Finish: "Matte"},
			{Name: "Golden Bronze", Hex: "#B8856E", Finish: "Dewy"},
			{Name: "Caramel", Hex: "#A67B66", Finish: "Natural"},
		},
		UndertoneCool: {
			{Name: "Cool Tan", Hex: "#C4A0A4", Finish: "Matte"},
			{Name: "Cocoa Rose", Hex: "#B89498", Finish: "Dewy"},
			{Name: "Neutral Cocoa", Hex: "#A6888C", Finish: "Natural"},
		},
		UndertoneNeutral: {
			{Name: "True Tan", Hex: "#C49C94", Finish: "Matte"},
			{Name: "Neutral Bronze", Hex: "#B88C84", Finish: "Dewy"},
			{Name: "Natural Caramel", Hex: "#A67C74", Finish: "Natural"},
		},
	},
	SkinToneDeep: {
		UndertoneWarm: {
			{Name: "Deep Golden", Hex: "#8B6F66", Finish: "Matte"},
			{Name: "Rich Bronze", Hex: "#70544C", Finish: "Dewy"},
			{Name: "Espresso", Hex: "#5C4840", Finish: "Natural"},
		},
		UndertoneCool: {
			{Name: "Deep Cocoa", Hex: "#8B7478", Finish: "Matte"},
			{Name: "Cool Mahogany", Hex: "#705C60", Finish: "Dewy"},
			{Name: "Rich Plum", Hex: "#5C484C", Finish: "Natural"},
		},
		UndertoneNeutral: {
			{Name: "Deep Neutral", Hex: "#8B746E", Finish: "Matte"},
			{Name: "Neutral Espresso", Hex: "#705C56", Finish: "Dewy"},
			{Name: "Natural Deep", Hex: "#5C4844", Finish: "Natural"},
		},
	},
}

// FoundationShadesFor falls back to (medium, neutral) when either key is
// unknown. Clients rely on that target for malformed analyzer output.
func FoundationShadesFor(tone SkinTone, u Undertone) []MakeupShade {
	if byUndertone, ok := foundationShades[tone]; ok {
		if shades, ok := byUndertone[u]; ok {
			return clone(shades)
		}
	}
	return clone(foundationShades[SkinToneMedium][UndertoneNeutral])
}

var (
	warmLipstick = []MakeupShade{
		{Name: "Coral Crush", Hex: "#FF7F50", Finish: "Satin"},
		{Name: "Peach Dream", Hex: "#FFAE88", Finish: "Cream"},
		{Name: "Terracotta", Hex: "#CC8866", Finish: "Matte"},
		{Name: "Warm Nude", Hex: "#D2A68E", Finish: "Satin"},
	}
	coolLipstick = []MakeupShade{
		{Name: "Berry Bliss", Hex: "#A43A57", Finish: "Satin"},
		{Name: "Cool Rose", Hex: "#C45577", Finish: "Cream"},
		{Name: "Mauve Magic", Hex: "#C4A4C4", Finish: "Matte"},
		{Name: "Cool Nude", Hex: "#D4B4C4", Finish: "Satin"},
	}
	neutralLipstick = []MakeupShade{
		{Name: "Perfect Pink", Hex: "#E8A4A8", Finish: "Satin"},
		{Name: "Rose Brown", Hex: "#C49488", Finish: "Cream"},
		{Name: "Nude Blush", Hex: "#D4B4A8", Finish: "Matte"},
		{Name: "True Nude", Hex: "#C4A498", Finish: "Satin"},
	}
)

func LipstickShadesFor(u Undertone) []MakeupShade {
	switch u {
	case UndertoneWarm:
		return clone(warmLipstick)
	case UndertoneCool:
		return clone(coolLipstick)
	default:
		return clone(neutralLipstick)
	}
}

var (
	warmBlush = []MakeupShade{
		{Name: "Peachy Glow", Hex: "#FFB88C", Finish: "Powder"},
		{Name: "Coral Blush", Hex: "#FF9980", Finish: "Cream"},
		{Name: "Warm Bronze", Hex: "#D4A090", Finish: "Powder"},
	}
	coolBlush = []MakeupShade{
		{Name: "Pink Flush", Hex: "#FFB4C4", Finish: "Powder"},
		{Name: "Rose Petal", Hex: "#E8A4B4", Finish: "Cream"},
		{Name: "Cool Mauve", Hex: "#D4A4C4", Finish: "Powder"},
	}
	neutralBlush = []MakeupShade{
		{Name: "Natural Flush", Hex: "#FFB4A8", Finish: "Powder"},
		{Name: "Soft Rose", Hex: "#E8A4A4", Finish: "Cream"},
		{Name: "Nude Glow", Hex: "#D4A49C", Finish: "Powder"},
	}
)

func BlushShadesFor(u Undertone) []MakeupShade {
	switch u {
	case UndertoneWarm:
		return clone(warmBlush)
	case UndertoneCool:
		return clone(coolBlush)
	default:
		return clone(neutralBlush)
	}
}

var (
	warmEyeshadow = []MakeupShade{
		{Name: "Golden Bronze", Hex: "#B8856E", Finish: "Shimmer"},
		{Name: "Warm Brown", Hex: "#8B6F66", Finish: "Matte"},
		{Name: "Copper", Hex: "#C49186", Finish: "Metallic"},
		{Name: "Olive Green", Hex: "#9B8B6C", Finish: "Matte"},
	}
	coolEyeshadow = []MakeupShade{
		{Name: "Cool Taupe", Hex: "#9B8B9B", Finish: "Matte"},
		{Name: "Lavender", Hex: "#C4A4C4", Finish: "Shimmer"},
		{Name: "Cool Grey", Hex: "#8C9CA4", Finish: "Matte"},
		{Name: "Plum", Hex: "#7A5A7A", Finish: "Metallic"},
	}
	neutralEyeshadow = []MakeupShade{
		{Name: "True Taupe", Hex: "#B8A890", Finish: "Matte"},
		{Name: "Champagne", Hex: "#D4C4B0", Finish: "Shimmer"},
		{Name: "Soft Brown", Hex: "#9C8C78", Finish: "Matte"},
		{Name: "Rose Gold", Hex: "#C4A49C", Finish: "Metallic"},
	}
)

func EyeshadowShadesFor(u Undertone) []MakeupShade {
	switch u {
	case UndertoneWarm:
		return clone(warmEyeshadow)
	case UndertoneCool:
		return clone(coolEyeshadow)
	default:
		return clone(neutralEyeshadow)
	}
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
