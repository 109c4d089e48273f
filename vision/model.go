package vision

import (
	"context"
	"fmt"
	"os"

	"go-platewise/types"
)

// Analyzer is a vision model that can describe one food image.
// Implementations return an error only for transport-level failures; output
// the model produced but that cannot be parsed is degraded, not failed.
type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (*types.VisionAnalysis, error)
}

// foodPrompt is the fixed instruction sent with every image. Dish names are
// requested in searchable form because they are forwarded verbatim to the
// nutrition lookup.
const foodPrompt = `Analyze this food image in detail. Provide:
1. A detailed description of what you see (keep it concise)
2. List of specific dishes/food items with their approximate serving sizes (be specific about dish names for nutrition lookup)
3. List of ingredients/objects you can identify
4. Your confidence level in the analysis

For dishes, use common, searchable names (e.g., "chicken breast grilled", "caesar salad", "chocolate chip cookie" rather than vague terms).

Please respond in JSON format with the following structure:
{
  "description": "detailed description of the food image",
  "dishes": [
    {
      "name": "specific dish name",
      "servingSize": "1 serving" or "1 cup" etc
    }
  ],
  "objects": ["ingredient1", "ingredient2", "ingredient3"],
  "confidence": 0.95
}`

// NewAnalyzer builds the configured vision backend. VISION_PROVIDER selects
// "gemini" (default) or "openai"; the matching API key must be set.
func NewAnalyzer() (Analyzer, error) {
	provider := os.Getenv("VISION_PROVIDER")
	if provider == "" {
		provider = "gemini"
	}

	switch provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
		}
		return NewGeminiAnalyzer(apiKey, os.Getenv("GEMINI_MODEL")), nil
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		return NewOpenAIAnalyzer(apiKey), nil
	default:
		return nil, fmt.Errorf("unsupported vision provider: %s", provider)
	}
}
