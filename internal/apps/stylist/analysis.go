package stylist

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultFeatures is substituted whenever the analyzer fails or returns
// something that does not validate.
var DefaultFeatures = FeatureVector{
	SkinTone:   string(SkinToneMedium),
	Undertone:  string(UndertoneNeutral),
	FaceShape:  string(FaceShapeOval),
	HairColor:  "brown",
	EyeColor:   "brown",
	Confidence: 0.7,
}

// BuildAnalysis validates a raw feature vector and turns it into an Analysis
// with a fresh id, the undertone palette and the current time. Timestamps are
// kept at microsecond precision, the finest postgres stores.
func BuildAnalysis(raw FeatureVector, imageData string) (*Analysis, error) {
	return buildAnalysisAt(raw, imageData, time.Now().UTC())
}

func buildAnalysisAt(raw FeatureVector, imageData string, now time.Time) (*Analysis, error) {
	if err := ValidateFeatures(raw); err != nil {
		return nil, err
	}

	undertone := Undertone(raw.Undertone)
	return &Analysis{
		ID:           uuid.NewString(),
		ImageData:    imageData,
		SkinTone:     SkinTone(raw.SkinTone),
		Undertone:    undertone,
		FaceShape:    FaceShape(raw.FaceShape),
		HairColor:    strings.TrimSpace(raw.HairColor),
		EyeColor:     strings.TrimSpace(raw.EyeColor),
		Confidence:   raw.Confidence,
		ColorPalette: PaletteFor(undertone),
		Timestamp:    now.Truncate(time.Microsecond),
	}, nil
}

// ValidateFeatures returns a *ValidationError for the first bad field.
func ValidateFeatures(raw FeatureVector) error {
	if !validSkinTone(SkinTone(raw.SkinTone)) {
		return &ValidationError{Field: "skinTone", Reason: "must be one of light, medium, tan, deep"}
	}
	if !validUndertone(Undertone(raw.Undertone)) {
		return &ValidationError{Field: "undertone", Reason: "must be one of cool, warm, neutral"}
	}
	if !validFaceShape(FaceShape(raw.FaceShape)) {
		return &ValidationError{Field: "faceShape", Reason: "must be one of oval, round, square, heart, long, diamond"}
	}
	if strings.TrimSpace(raw.HairColor) == "" {
		return &ValidationError{Field: "hairColor", Reason: "must not be empty"}
	}
	if strings.TrimSpace(raw.EyeColor) == "" {
		return &ValidationError{Field: "eyeColor", Reason: "must not be empty"}
	}
	if math.IsNaN(raw.Confidence) || raw.Confidence < 0 || raw.Confidence > 1 {
		return &ValidationError{Field: "confidence", Reason: "must be between 0 and 1"}
	}
	return nil
}

func validSkinTone(s SkinTone) bool {
	switch s {
	case SkinToneLight, SkinToneMedium, SkinToneTan, SkinToneDeep:
		return true
	}
	return false
}

func validUndertone(u Undertone) bool {
	switch u {
	case UndertoneCool, UndertoneWarm, UndertoneNeutral:
		return true
	}
	return false
}

func validFaceShape(f FaceShape) bool {
	switch f {
	case FaceShapeOval, FaceShapeRound, FaceShapeSquare, FaceShapeHeart, FaceShapeLong, FaceShapeDiamond:
		return true
	}
	return false
}
