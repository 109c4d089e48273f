package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"go-platewise/processor"
	"go-platewise/types"
)

type fixedAnalyzer struct {
	analysis *types.VisionAnalysis
}

func (f *fixedAnalyzer) Analyze(_ context.Context, _ []byte, _ string) (*types.VisionAnalysis, error) {
	return f.analysis, nil
}

type fixedLookup struct {
	facts map[string]*types.NutritionFacts
}

func (f *fixedLookup) Lookup(_ context.Context, query string) (*types.NutritionFacts, bool) {
	facts, ok := f.facts[query]
	return facts, ok
}

func analyzeRouter(pipeline *processor.Pipeline) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/platewise/analyze", func(c *gin.Context) {
		AnalyzeImages(c, pipeline)
	})
	return r
}

func postAnalyze(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/platewise/analyze", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnalyzeRejectsEmptyImageList(t *testing.T) {
	pipeline := processor.NewPipeline(&fixedAnalyzer{}, &fixedLookup{})
	r := analyzeRouter(pipeline)

	w := postAnalyze(t, r, `{"images": []}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}

	w = postAnalyze(t, r, `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status for missing images = %d, want 400", w.Code)
	}
}

func TestAnalyzeRejectsMalformedBody(t *testing.T) {
	pipeline := processor.NewPipeline(&fixedAnalyzer{}, &fixedLookup{})
	r := analyzeRouter(pipeline)

	w := postAnalyze(t, r, `{"images": "nope"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestAnalyzeMissingVisionConfiguration(t *testing.T) {
	r := analyzeRouter(nil)

	w := postAnalyze(t, r, `{"images": [{"url": "u", "key": "k", "name": "n"}]}`)
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestAnalyzeReturnsBatchResult(t *testing.T) {
	analyzer := &fixedAnalyzer{analysis: &types.VisionAnalysis{
		Description: "a plate of pancakes",
		Confidence:  0.9,
		Objects:     []string{"pancakes", "syrup"},
		Dishes:      []types.DishCandidate{{Name: "pancakes", ServingSize: "1 stack"}},
	}}
	lookup := &fixedLookup{facts: map[string]*types.NutritionFacts{
		"pancakes": {FoodName: "pancakes", Calories: 520, Protein: 11},
	}}

	pipeline := processor.NewPipeline(analyzer, lookup)
	pipeline.FetchImage = func(_ context.Context, url string) ([]byte, error) {
		return []byte("fake image"), nil
	}
	r := analyzeRouter(pipeline)

	w := postAnalyze(t, r, `{"images": [{"url": "https://utfs.io/f/a.jpg", "key": "a", "name": "a.jpg"}]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result types.BatchAnalysisResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("response not decodable: %v", err)
	}
	if len(result.Images) != 1 {
		t.Fatalf("expected 1 image result, got %d", len(result.Images))
	}
	if result.Images[0].TotalNutrition == nil || result.Images[0].TotalNutrition.Calories != 520 {
		t.Errorf("totals wrong: %+v", result.Images[0].TotalNutrition)
	}
	if result.OverallTotalNutrition == nil || result.OverallTotalNutrition.Calories != 520 {
		t.Errorf("overall totals wrong: %+v", result.OverallTotalNutrition)
	}
}
