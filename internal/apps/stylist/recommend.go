package stylist

const (
	accentNavy  = "#2C3E50"
	accentWhite = "#FFFFFF"
	accentBlack = "#000000"
	accentGold  = "#FFD700"
	accentTaupe = "#8B7D6B"
	accentRose  = "#FFE4E1"
	accentBeige = "#F5F5DC"
)

// DeriveMakeupRecommendations returns one bundle per category, always in the
// order foundation, lipstick, blush, eyeshadow. IDs are left empty; the
// service stamps them at persistence time.
func DeriveMakeupRecommendations(a *Analysis) []MakeupRecommendation {
	return []MakeupRecommendation{
		{Category: CategoryFoundation, Shades: FoundationShadesFor(a.SkinTone, a.Undertone)},
		{Category: CategoryLipstick, Shades: LipstickShadesFor(a.Undertone)},
		{Category: CategoryBlush, Shades: BlushShadesFor(a.Undertone)},
		{Category: CategoryEyeshadow, Shades: EyeshadowShadesFor(a.Undertone)},
	}
}

type occasionTemplate struct {
	occasion Occasion
	colors   func(p []string) []string
	styles   []string
	advice   map[Undertone]string
}

// Outfit colors index into the 8-entry undertone palette; accents are fixed
// per occasion regardless of undertone.
var occasionTemplates = []occasionTemplate{
	{
		occasion: OccasionCasual,
		colors:   func(p []string) []string { return []string{p[0], p[4], p[6], accentWhite, accentNavy} },
		styles:   []string{"Relaxed", "Comfortable", "Everyday"},
		advice: map[Undertone]string{
			UndertoneWarm:    "For casual wear, embrace earthy tones like peach, camel, and olive. Pair a warm beige top with comfortable denim and add a terracotta cardigan for dimension.",
			UndertoneCool:    "Cool casual looks shine in lavender, slate blue, and soft grey. Try a mauve sweater with cool-toned jeans and powder blue accessories.",
			UndertoneNeutral: "Versatile neutrals work beautifully for your casual style. Mix beige and taupe pieces with soft grey or sage for an effortlessly chic look.",
		},
	},
	{
		occasion: OccasionParty,
		colors:   func(p []string) []string { return []string{p[1], p[3], p[5], accentBlack, accentGold} },
		styles:   []string{"Bold", "Glamorous", "Eye-catching"},
		advice: map[Undertone]string{
			UndertoneWarm:    "Stand out at parties in rich coral, warm brown, and burnt sienna. A terracotta dress with gold accessories creates a stunning, confident look.",
			UndertoneCool:    "Party in jewel tones! Deep purple, plum, and cool blue make a striking combination. Add silver accessories for extra glamour.",
			UndertoneNeutral: "For parties, play with rose brown and mushroom tones. A neutral palette lets you add pops of color with accessories while staying elegant.",
		},
	},
	{
		occasion: OccasionFormal,
		colors:   func(p []string) []string { return []string{p[7], p[5], accentBlack, accentWhite, p[2]} },
		styles:   []string{"Elegant", "Professional", "Sophisticated"},
		advice: map[Undertone]string{
			UndertoneWarm:    "Formal events call for sophisticated gold, warm brown, and deep terracotta. A tailored suit in warm brown with gold accents exudes confidence.",
			UndertoneCool:    "Elegant cool tones like ice blue, plum, and slate create a refined formal look. A powder blue dress or suit commands attention gracefully.",
			UndertoneNeutral: "Timeless elegance in taupe and greige. These neutral tones are perfect for formal settings and can be dressed up with statement jewelry.",
		},
	},
	{
		occasion: OccasionInterview,
		colors:   func(p []string) []string { return []string{accentNavy, accentWhite, p[4], p[6], accentTaupe} },
		styles:   []string{"Professional", "Polished", "Conservative"},
		advice: map[Undertone]string{
			UndertoneWarm:    "Interview success in camel and olive with navy. A navy suit with a warm beige blouse projects professionalism while complementing your undertone.",
			UndertoneCool:    "Project confidence in slate, cool grey, and navy. These colors convey professionalism while enhancing your natural cool tones.",
			UndertoneNeutral: "Classic interview attire in greige and sage. These sophisticated neutrals work in any professional setting and photograph well.",
		},
	},
	{
		occasion: OccasionWedding,
		colors:   func(p []string) []string { return []string{p[0], p[2], p[7], accentRose, accentBeige} },
		styles:   []string{"Romantic", "Festive", "Celebratory"},
		advice: map[Undertone]string{
			UndertoneWarm:    "Wedding guest perfection in peach, terracotta, and gold. A flowing dress in warm coral tones with gold accessories is both festive and flattering.",
			UndertoneCool:    "Celebrate in romantic lavender, mauve, and soft purple. These feminine tones are perfect for weddings and photograph beautifully.",
			UndertoneNeutral: "Wedding elegance in soft beige and rose brown. These romantic neutrals work for any wedding season and style.",
		},
	},
}

// DeriveOutfitRecommendations depends on the undertone only. Skin tone and
// face shape never influence outfits.
func DeriveOutfitRecommendations(a *Analysis) []OutfitRecommendation {
	u := a.Undertone
	switch u {
	case UndertoneWarm, UndertoneCool, UndertoneNeutral:
	default:
		u = UndertoneNeutral
	}
	palette := PaletteFor(u)

	recs := make([]OutfitRecommendation, 0, len(occasionTemplates))
	for _, t := range occasionTemplates {
		recs = append(recs, OutfitRecommendation{
			Occasion:    t.occasion,
			Colors:      t.colors(palette),
			Styles:      clone(t.styles),
			Description: t.advice[u],
		})
	}
	return recs
}
