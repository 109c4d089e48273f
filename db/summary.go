package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"go-platewise/types"
)

// RecomputeDailySummary rebuilds one user's summary doc for one day from the
// meal records themselves. Doc ID is userID_date so reruns overwrite.
func RecomputeDailySummary(client *firestore.Client, userID, date string) error {
	ctx := context.Background()

	meals, err := GetMeals(client, MealQuery{
		UserID:    userID,
		StartDate: date,
		EndDate:   date,
		Limit:     500,
	})
	if err != nil {
		return fmt.Errorf("failed to fetch meals for summary: %w", err)
	}

	var totals types.NutritionTotals
	for i := range meals {
		totals.AddTotals(&meals[i].Totals)
	}

	summary := types.DailySummary{
		UserID:    userID,
		Date:      date,
		Totals:    totals,
		MealCount: len(meals),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	docID := userID + "_" + date
	_, err = client.Collection(summariesCollection).Doc(docID).Set(ctx, summary)
	if err != nil {
		return fmt.Errorf("failed to write daily summary %s: %w", docID, err)
	}

	return nil
}

// GetDailySummaries returns summary rows for the user, newest date first.
func GetDailySummaries(client *firestore.Client, userID, startDate, endDate string, limit int) ([]types.DailySummary, error) {
	ctx := context.Background()

	if limit <= 0 {
		limit = 30
	}

	query := client.Collection(summariesCollection).
		Where("userId", "==", userID).
		OrderBy("date", firestore.Desc).
		Limit(limit)

	if startDate != "" {
		query = query.Where("date", ">=", startDate)
	}
	if endDate != "" {
		query = query.Where("date", "<=", endDate)
	}

	docs, err := query.Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch daily summaries: %w", err)
	}

	summaries := make([]types.DailySummary, 0, len(docs))
	for _, doc := range docs {
		var s types.DailySummary
		if err := doc.DataTo(&s); err != nil {
			return nil, fmt.Errorf("failed to decode summary %s: %w", doc.Ref.ID, err)
		}
		summaries = append(summaries, s)
	}

	return summaries, nil
}

// ListMealUserIDs returns the distinct user IDs with meals logged on the
// given day. Used by the nightly rollup.
func ListMealUserIDs(client *firestore.Client, date string) ([]string, error) {
	ctx := context.Background()

	iter := client.Collection(mealsCollection).
		Where("loggedAt", ">=", date+"T00:00:00Z").
		Where("loggedAt", "<=", date+"T23:59:59Z").
		Documents(ctx)

	seen := make(map[string]bool)
	var userIDs []string
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error iterating meals for %s: %w", date, err)
		}

		var m types.Meal
		if err := doc.DataTo(&m); err != nil {
			continue
		}
		if m.UserID != "" && !seen[m.UserID] {
			seen[m.UserID] = true
			userIDs = append(userIDs, m.UserID)
		}
	}

	return userIDs, nil
}
