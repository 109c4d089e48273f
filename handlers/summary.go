package handlers

import (
	"net/http"
	"strconv"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-platewise/db"
)

// GetNutritionSummary returns the caller's daily nutrition summary rows.
func GetNutritionSummary(c *gin.Context, firestoreClient *firestore.Client) {
	uid := userID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	limit := 30
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}

	summaries, err := db.GetDailySummaries(firestoreClient, uid, c.Query("startDate"), c.Query("endDate"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nutrition data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": summaries, "period": "daily"})
}
