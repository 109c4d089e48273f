package types

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestTotalsOmittedFromJSONWhenAbsent(t *testing.T) {
	result := BatchAnalysisResult{
		Images: []ImageAnalysisResult{{ImageURL: "u", Objects: []string{}, Dishes: []ResolvedDish{}}},
	}

	out, err := json.Marshal(result)
	if err != nil {
		t.Fatal(err)
	}
	// Persistence decides whether to write based on the field's presence, so
	// an absent total must not serialize as a zero-valued object.
	if strings.Contains(string(out), "totalNutrition") || strings.Contains(string(out), "overallTotalNutrition") {
		t.Errorf("absent totals leaked into JSON: %s", out)
	}
}

func TestResolvedDishCarriesExactlyOneBranch(t *testing.T) {
	d := DishCandidate{Name: "miso soup", ServingSize: "1 bowl"}

	resolved := ResolveDish(d, &NutritionFacts{FoodName: "miso soup", Calories: 84})
	out, _ := json.Marshal(resolved)
	if !strings.Contains(string(out), `"nutrition"`) || strings.Contains(string(out), `"error"`) {
		t.Errorf("resolved dish JSON wrong: %s", out)
	}

	missed := UnresolvedDish(d, "Nutrition data not found")
	out, _ = json.Marshal(missed)
	if strings.Contains(string(out), `"nutrition"`) || !strings.Contains(string(out), `"error"`) {
		t.Errorf("unresolved dish JSON wrong: %s", out)
	}
}

func TestTotalsAddUsesSixFields(t *testing.T) {
	var totals NutritionTotals
	totals.Add(&NutritionFacts{
		Calories:          100,
		Protein:           10,
		TotalCarbohydrate: 20,
		TotalFat:          5,
		DietaryFiber:      3,
		Sodium:            250,
		Sugars:            99, // not part of the totals shape
	})

	want := NutritionTotals{Calories: 100, Protein: 10, Carbs: 20, Fat: 5, Fiber: 3, Sodium: 250}
	if totals != want {
		t.Errorf("totals = %+v, want %+v", totals, want)
	}
}
