package vision

import (
	"encoding/json"
	"strings"

	"go-platewise/types"
)

const (
	// Confidence assigned when the model answered but not in the requested
	// structure at all.
	degradedConfidence = 0.75
	// Confidence assigned when the structure parsed but the confidence field
	// was missing or not a number.
	defaultConfidence = 0.8
)

// cleanModelResponse strips markdown code fences and slices the text down to
// the outermost JSON object, if one is present.
func cleanModelResponse(text string) string {
	text = strings.ReplaceAll(text, "```json", "")
	text = strings.ReplaceAll(text, "```", "")
	text = strings.TrimSpace(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start != -1 && end != -1 && end > start {
		text = text[start : end+1]
	}
	return text
}

// parseAnalysis turns raw model output into a VisionAnalysis. It never fails:
// unparseable output becomes a degraded result whose description is the raw
// text, with no objects and no dishes.
func parseAnalysis(text string) *types.VisionAnalysis {
	var raw struct {
		Description string                `json:"description"`
		Confidence  json.RawMessage       `json:"confidence"`
		Objects     []string              `json:"objects"`
		Dishes      []types.DishCandidate `json:"dishes"`
	}

	if err := json.Unmarshal([]byte(cleanModelResponse(text)), &raw); err != nil {
		return &types.VisionAnalysis{
			Description: text,
			Confidence:  degradedConfidence,
			Objects:     []string{},
			Dishes:      []types.DishCandidate{},
		}
	}

	confidence := defaultConfidence
	if len(raw.Confidence) > 0 {
		// A pointer target keeps the JSON literal null on the default path
		// along with absent and non-numeric values.
		var c *float64
		if err := json.Unmarshal(raw.Confidence, &c); err == nil && c != nil {
			confidence = clamp01(*c)
		}
	}

	objects := raw.Objects
	if objects == nil {
		objects = []string{}
	}
	dishes := raw.Dishes
	if dishes == nil {
		dishes = []types.DishCandidate{}
	}

	return &types.VisionAnalysis{
		Description: raw.Description,
		Confidence:  confidence,
		Objects:     objects,
		Dishes:      dishes,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
