package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-platewise/processor"
	"go-platewise/types"
)

// AnalyzeImages handles the batch analyze request. Per-image and per-dish
// failures come back inside the result body; only an empty image list or
// missing upstream configuration fails the request itself.
func AnalyzeImages(c *gin.Context, pipeline *processor.Pipeline) {
	if pipeline == nil || pipeline.Analyzer == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Vision model not configured"})
		return
	}

	var request struct {
		Images []types.ImageRef `json:"images"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := pipeline.AnalyzeBatch(c.Request.Context(), request.Images)
	if err != nil {
		if errors.Is(err, processor.ErrNoImages) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No images provided"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze images"})
		return
	}

	c.JSON(http.StatusOK, result)
}
