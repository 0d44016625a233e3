package ai

import (
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps/stylist"
)

const analyzeSystemPrompt = `You are an expert beauty analyst. Analyze the person's features and provide:
1. Skin tone (light, medium, tan, or deep)
2. Undertone (cool, warm, or neutral) - look for pink/red vs yellow/golden undertones
3. Face shape (oval, round, square, heart, long, or diamond)
4. Hair color (be specific: e.g., "dark brown", "blonde", "black")
5. Eye color (e.g., "brown", "blue", "green", "hazel")
6. Confidence score (0-1) for your analysis accuracy

Respond with JSON only in this exact format:
{
  "skinTone": "medium",
  "undertone": "warm",
  "faceShape": "oval",
  "hairColor": "dark brown",
  "eyeColor": "brown",
  "confidence": 0.85
}`

const analyzeUserPrompt = "Analyze this person's features for beauty and fashion recommendations."

const stylistSystemPrompt = `You are an expert AI fashion and beauty stylist. Provide personalized,
helpful, and encouraging advice about makeup, clothing, hairstyles, and styling.
Be specific with color recommendations and explain why certain choices work well.
Keep responses warm, friendly, and concise (2-3 paragraphs max).`

const stylistAck = "I understand. I'll provide expert fashion and beauty advice that's personalized, specific, and encouraging."

// chatPrompt prefixes the question with the user's analysis when known.
func chatPrompt(message string, sc *stylist.StyleContext) string {
	if sc == nil {
		return message
	}

	var b strings.Builder
	b.WriteString("User context: ")
	if sc.SkinTone != "" {
		fmt.Fprintf(&b, "Skin tone: %s, ", sc.SkinTone)
	}
	if sc.Undertone != "" {
		fmt.Fprintf(&b, "Undertone: %s, ", sc.Undertone)
	}
	if sc.FaceShape != "" {
		fmt.Fprintf(&b, "Face shape: %s", sc.FaceShape)
	}
	b.WriteString("\n\nQuestion: ")
	b.WriteString(message)
	return b.String()
}
