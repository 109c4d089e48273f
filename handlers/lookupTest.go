package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-platewise/processor"
)

// TestLookup probes the nutrition resolver directly with a query string.
// Handy for checking Nutritionix credentials without burning a vision call.
func TestLookup(c *gin.Context, lookup processor.NutritionLookup) {
	query := c.Query("q")
	if query == "" {
		query = "1 cup of rice" // default probe query
	}

	facts, ok := lookup.Lookup(c.Request.Context(), query)
	if !ok {
		c.JSON(http.StatusOK, gin.H{
			"query": query,
			"found": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":     query,
		"found":     true,
		"nutrition": facts,
	})
}
