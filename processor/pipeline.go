package processor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"go-platewise/types"
	"go-platewise/vision"
)

// ErrNoImages is returned by AnalyzeBatch when the request carries no images.
var ErrNoImages = errors.New("no images provided")

const dishNotFoundReason = "Nutrition data not found"

// NutritionLookup resolves a dish name to nutrition facts. The boolean is
// false for a miss; lookups never error.
type NutritionLookup interface {
	Lookup(ctx context.Context, query string) (*types.NutritionFacts, bool)
}

// Pipeline runs the whole analysis: image fetch, vision call, per-dish
// nutrition lookups, and both levels of totals.
type Pipeline struct {
	Analyzer vision.Analyzer
	Lookup   NutritionLookup

	// FetchImage downloads image bytes; replaced in tests.
	FetchImage func(ctx context.Context, url string) ([]byte, error)
}

func NewPipeline(analyzer vision.Analyzer, lookup NutritionLookup) *Pipeline {
	return &Pipeline{
		Analyzer:   analyzer,
		Lookup:     lookup,
		FetchImage: FetchImageBytes,
	}
}

// AnalyzeBatch analyzes every image concurrently and sums all per-image
// totals. The output list always has the same length and order as the input;
// a failed image degrades in place and never cancels its siblings. The only
// error condition is an empty input list.
func (p *Pipeline) AnalyzeBatch(ctx context.Context, images []types.ImageRef) (*types.BatchAnalysisResult, error) {
	if len(images) == 0 {
		return nil, ErrNoImages
	}

	log.Printf("Starting analysis of %d images", len(images))

	results := make([]types.ImageAnalysisResult, len(images))
	var wg sync.WaitGroup

	for i, img := range images {
		wg.Add(1)
		go func(idx int, ref types.ImageRef) {
			defer wg.Done()
			results[idx] = p.analyzeImage(ctx, ref)
		}(i, img)
	}
	wg.Wait()

	var overall types.NutritionTotals
	for i := range results {
		if results[i].TotalNutrition != nil {
			overall.AddTotals(results[i].TotalNutrition)
		}
	}

	out := &types.BatchAnalysisResult{Images: results}
	if overall.Calories > 0 {
		out.OverallTotalNutrition = &overall
	}

	log.Printf("Analysis complete for %d images. Total calories: %v", len(images), overall.Calories)
	return out, nil
}

// analyzeImage produces the full result for one image. It never fails: fetch
// and vision errors become a zero-confidence result with an explanatory
// description, and dish-lookup misses are recorded per dish.
func (p *Pipeline) analyzeImage(ctx context.Context, ref types.ImageRef) types.ImageAnalysisResult {
	data, err := p.FetchImage(ctx, ref.URL)
	if err != nil {
		log.Printf("Error fetching image %s: %v", ref.Name, err)
		return failedImageResult(ref, err)
	}

	analysis, err := p.Analyzer.Analyze(ctx, data, MimeTypeFromURL(ref.URL))
	if err != nil {
		log.Printf("Error analyzing image %s: %v", ref.Name, err)
		return failedImageResult(ref, err)
	}

	dishes := p.resolveDishes(ctx, analysis.Dishes)

	result := types.ImageAnalysisResult{
		ImageURL:    ref.URL,
		ImageName:   ref.Name,
		ImageKey:    ref.Key,
		Description: analysis.Description,
		Confidence:  analysis.Confidence,
		Objects:     analysis.Objects,
		Dishes:      dishes,
	}

	var totals types.NutritionTotals
	for i := range dishes {
		if dishes[i].Nutrition != nil {
			totals.Add(dishes[i].Nutrition)
		}
	}
	if totals.Calories > 0 {
		result.TotalNutrition = &totals
	}

	return result
}

// resolveDishes looks up every candidate concurrently. Each goroutine writes
// into its own slot so the output keeps the vision model's dish order no
// matter which lookup returns first.
func (p *Pipeline) resolveDishes(ctx context.Context, candidates []types.DishCandidate) []types.ResolvedDish {
	resolved := make([]types.ResolvedDish, len(candidates))
	var wg sync.WaitGroup

	for i, candidate := range candidates {
		wg.Add(1)
		go func(idx int, dish types.DishCandidate) {
			defer wg.Done()
			facts, ok := p.Lookup.Lookup(ctx, dish.Name)
			if ok {
				resolved[idx] = types.ResolveDish(dish, facts)
			} else {
				resolved[idx] = types.UnresolvedDish(dish, dishNotFoundReason)
			}
		}(i, candidate)
	}
	wg.Wait()

	return resolved
}

func failedImageResult(ref types.ImageRef, err error) types.ImageAnalysisResult {
	return types.ImageAnalysisResult{
		ImageURL:    ref.URL,
		ImageName:   ref.Name,
		ImageKey:    ref.Key,
		Description: fmt.Sprintf("Failed to analyze image: %v", err),
		Confidence:  0,
		Objects:     []string{},
		Dishes:      []types.ResolvedDish{},
	}
}
