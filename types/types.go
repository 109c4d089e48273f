package types

// ImageRef identifies one uploaded image. The upload collaborator supplies
// all three fields; the pipeline only ever fetches URL.
type ImageRef struct {
	URL  string `json:"url"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// NutritionFacts is one food entry as returned by the nutrition lookup.
// Field names follow the Nutritionix natural/nutrients response.
type NutritionFacts struct {
	FoodName           string  `json:"food_name"`
	ServingQty         float64 `json:"serving_qty"`
	ServingUnit        string  `json:"serving_unit"`
	ServingWeightGrams float64 `json:"serving_weight_grams"`
	Calories           float64 `json:"nf_calories"`
	TotalFat           float64 `json:"nf_total_fat"`
	SaturatedFat       float64 `json:"nf_saturated_fat"`
	Cholesterol        float64 `json:"nf_cholesterol"`
	Sodium             float64 `json:"nf_sodium"`
	TotalCarbohydrate  float64 `json:"nf_total_carbohydrate"`
	DietaryFiber       float64 `json:"nf_dietary_fiber"`
	Sugars             float64 `json:"nf_sugars"`
	Protein            float64 `json:"nf_protein"`
}

// DishCandidate is one dish proposed by the vision model, prior to lookup.
// Name is used verbatim as the lookup query.
type DishCandidate struct {
	Name        string `json:"name"`
	ServingSize string `json:"servingSize"`
}

// ResolvedDish is a dish candidate after nutrition lookup. Exactly one of
// Nutrition or Error is set; use ResolveDish / UnresolvedDish to construct.
type ResolvedDish struct {
	Name        string          `json:"name"`
	ServingSize string          `json:"servingSize"`
	Nutrition   *NutritionFacts `json:"nutrition,omitempty"`
	Error       string          `json:"error,omitempty"`
}

// ResolveDish builds a ResolvedDish carrying nutrition facts.
func ResolveDish(d DishCandidate, facts *NutritionFacts) ResolvedDish {
	return ResolvedDish{Name: d.Name, ServingSize: d.ServingSize, Nutrition: facts}
}

// UnresolvedDish builds a ResolvedDish carrying a failure reason.
func UnresolvedDish(d DishCandidate, reason string) ResolvedDish {
	return ResolvedDish{Name: d.Name, ServingSize: d.ServingSize, Error: reason}
}

// NutritionTotals is the six-field aggregate used at both the per-image and
// the overall level. Always an arithmetic sum over resolved dishes; dishes
// without nutrition contribute nothing.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sodium   float64 `json:"sodium"`
}

// Add folds one set of nutrition facts into the totals.
func (t *NutritionTotals) Add(f *NutritionFacts) {
	t.Calories += f.Calories
	t.Protein += f.Protein
	t.Carbs += f.TotalCarbohydrate
	t.Fat += f.TotalFat
	t.Fiber += f.DietaryFiber
	t.Sodium += f.Sodium
}

// AddTotals folds another totals value into the totals.
func (t *NutritionTotals) AddTotals(o *NutritionTotals) {
	t.Calories += o.Calories
	t.Protein += o.Protein
	t.Carbs += o.Carbs
	t.Fat += o.Fat
	t.Fiber += o.Fiber
	t.Sodium += o.Sodium
}

// VisionAnalysis is the parsed output of one vision-model call.
type VisionAnalysis struct {
	Description string          `json:"description"`
	Confidence  float64         `json:"confidence"`
	Objects     []string        `json:"objects"`
	Dishes      []DishCandidate `json:"dishes"`
}

// ImageAnalysisResult is the full analysis of one submitted image.
// TotalNutrition is nil when no dish in the image resolved to countable
// calories; clients rely on its absence to suppress display and saving.
type ImageAnalysisResult struct {
	ImageURL       string           `json:"imageUrl"`
	ImageName      string           `json:"imageName"`
	ImageKey       string           `json:"imageKey"`
	Description    string           `json:"description"`
	Confidence     float64          `json:"confidence"`
	Objects        []string         `json:"objects"`
	Dishes         []ResolvedDish   `json:"dishes"`
	TotalNutrition *NutritionTotals `json:"totalNutrition,omitempty"`
}

// BatchAnalysisResult is the response for one analyze request. Images is
// always the same length and order as the submitted list.
type BatchAnalysisResult struct {
	Images                []ImageAnalysisResult `json:"images"`
	OverallTotalNutrition *NutritionTotals      `json:"overallTotalNutrition,omitempty"`
}
