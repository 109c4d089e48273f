package handlers

import (
	"net/http"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-platewise/db"
	"go-platewise/types"
)

// userID pulls the caller's identity from the X-User-ID header. Auth itself
// lives in front of this service.
func userID(c *gin.Context) string {
	return c.GetHeader("X-User-ID")
}

// SaveMeal persists one chosen image analysis as a meal record.
func SaveMeal(c *gin.Context, firestoreClient *firestore.Client) {
	uid := userID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var request struct {
		MealName       string                 `json:"mealName"`
		MealType       string                 `json:"mealType"`
		ImageURL       string                 `json:"imageUrl"`
		ImageKey       string                 `json:"imageKey"`
		ImageName      string                 `json:"imageName"`
		Description    string                 `json:"description"`
		TotalNutrition *types.NutritionTotals `json:"totalNutrition"`
		Dishes         []types.ResolvedDish   `json:"dishes"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// An analysis without totals has nothing countable to save.
	if request.TotalNutrition == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Meal has no nutrition totals"})
		return
	}

	meal := types.Meal{
		UserID:      uid,
		MealName:    request.MealName,
		MealType:    request.MealType,
		ImageURL:    request.ImageURL,
		ImageKey:    request.ImageKey,
		ImageName:   request.ImageName,
		Description: request.Description,
		Totals:      *request.TotalNutrition,
		Dishes:      db.MealDishesFromResult(request.Dishes),
	}

	mealID, err := db.SaveMeal(firestoreClient, meal)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save meal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"mealId":  mealID,
		"message": "Meal saved successfully!",
	})
}

// GetMeals lists the caller's meals with optional date and type filters.
func GetMeals(c *gin.Context, firestoreClient *firestore.Client) {
	uid := userID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := 50
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	meals, err := db.GetMeals(firestoreClient, db.MealQuery{
		UserID:    uid,
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
		MealType:  c.Query("mealType"),
		Limit:     limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch meals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"meals": meals,
		"count": len(meals),
	})
}
