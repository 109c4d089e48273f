package db

import (
	"context"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"go-platewise/types"
)

// SaveMeal writes one meal record and folds its totals into that day's
// summary. Returns the new meal ID.
func SaveMeal(client *firestore.Client, meal types.Meal) (string, error) {
	ctx := context.Background()

	if meal.ID == "" {
		meal.ID = uuid.New().String()
	}
	if meal.LoggedAt == "" {
		meal.LoggedAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := client.Collection(mealsCollection).Doc(meal.ID).Set(ctx, meal)
	if err != nil {
		return "", fmt.Errorf("failed to save meal: %w", err)
	}

	// Keep the daily summary current; a failure here should not lose the
	// meal itself, so it only logs.
	loggedAt, err := time.Parse(time.RFC3339, meal.LoggedAt)
	if err != nil {
		loggedAt = time.Now().UTC()
	}
	if err := RecomputeDailySummary(client, meal.UserID, loggedAt.UTC().Format("2006-01-02")); err != nil {
		log.Printf("Error updating daily summary for user %s: %v", meal.UserID, err)
	}

	log.Printf("Saved meal %s for user %s", meal.ID, meal.UserID)
	return meal.ID, nil
}

// MealQuery carries the optional filters of a meal listing.
type MealQuery struct {
	UserID    string
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive
	MealType  string
	Limit     int
}

// GetMeals returns the user's meals, newest first.
func GetMeals(client *firestore.Client, q MealQuery) ([]types.Meal, error) {
	ctx := context.Background()

	limit := q.Limit
	if limit <= 0 {
		limit = 50
	}

	query := client.Collection(mealsCollection).
		Where("userId", "==", q.UserID).
		OrderBy("loggedAt", firestore.Desc).
		Limit(limit)

	if q.StartDate != "" {
		query = query.Where("loggedAt", ">=", q.StartDate+"T00:00:00Z")
	}
	if q.EndDate != "" {
		query = query.Where("loggedAt", "<=", q.EndDate+"T23:59:59Z")
	}
	if q.MealType != "" && q.MealType != "all" {
		query = query.Where("mealType", "==", q.MealType)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch meals: %w", err)
	}

	meals := make([]types.Meal, 0, len(docs))
	for _, doc := range docs {
		var m types.Meal
		if err := doc.DataTo(&m); err != nil {
			return nil, fmt.Errorf("failed to decode meal %s: %w", doc.Ref.ID, err)
		}
		meals = append(meals, m)
	}

	return meals, nil
}

// MealDishesFromResult flattens an analysis result's resolved dishes into
// storable dish lines, zero-filling anything the lookup did not supply.
func MealDishesFromResult(dishes []types.ResolvedDish) []types.MealDish {
	out := make([]types.MealDish, 0, len(dishes))
	for _, d := range dishes {
		line := types.MealDish{
			DishName:    d.Name,
			ServingSize: d.ServingSize,
			ServingQty:  1,
			ServingUnit: "serving",
		}
		if d.Nutrition != nil {
			line.ServingQty = d.Nutrition.ServingQty
			line.ServingUnit = d.Nutrition.ServingUnit
			line.ServingWeightGrams = d.Nutrition.ServingWeightGrams
			line.Calories = d.Nutrition.Calories
			line.Protein = d.Nutrition.Protein
			line.TotalFat = d.Nutrition.TotalFat
			line.SaturatedFat = d.Nutrition.SaturatedFat
			line.Cholesterol = d.Nutrition.Cholesterol
			line.Sodium = d.Nutrition.Sodium
			line.TotalCarbohydrate = d.Nutrition.TotalCarbohydrate
			line.DietaryFiber = d.Nutrition.DietaryFiber
			line.Sugars = d.Nutrition.Sugars
		}
		out = append(out, line)
	}
	return out
}
