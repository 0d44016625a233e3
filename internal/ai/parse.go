package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/stylematch-backend/internal/apps/stylist"
)

var errNoJSONObject = errors.New("no JSON object in model output")

// extractJSON strips markdown fences and surrounding prose from model output.
func extractJSON(content string) (string, error) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(content, "```")
		content = strings.TrimSpace(content)
	}

	if json.Valid([]byte(content)) {
		return content, nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		candidate := content[start : end+1]
		if json.Valid([]byte(candidate)) {
			return candidate, nil
		}
	}
	return "", errNoJSONObject
}

// parseFeatures decodes and normalizes analyzer output. Validation of the
// enum values is left to stylist.BuildAnalysis.
func parseFeatures(content string) (*stylist.FeatureVector, error) {
	raw, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	var fv stylist.FeatureVector
	if err := json.Unmarshal([]byte(raw), &fv); err != nil {
		return nil, fmt.Errorf("failed to parse analysis result: %w", err)
	}

	fv.SkinTone = normalizeEnum(fv.SkinTone)
	fv.Undertone = normalizeEnum(fv.Undertone)
	fv.FaceShape = normalizeEnum(fv.FaceShape)
	fv.HairColor = strings.TrimSpace(fv.HairColor)
	fv.EyeColor = strings.TrimSpace(fv.EyeColor)
	// Some models answer in percent.
	if fv.Confidence > 1 && fv.Confidence <= 100 {
		fv.Confidence /= 100
	}
	return &fv, nil
}

func normalizeEnum(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
