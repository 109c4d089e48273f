package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-platewise/handlers"
	"go-platewise/processor"
)

func SetupRouter(firestoreClient *firestore.Client, pipeline *processor.Pipeline) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Platewise!",
		})
	})

	// api routes, clients injected into handlers
	api := r.Group("/api/platewise")
	{
		api.POST("/analyze", func(c *gin.Context) {
			handlers.AnalyzeImages(c, pipeline)
		})
		api.POST("/meals", func(c *gin.Context) {
			handlers.SaveMeal(c, firestoreClient)
		})
		api.GET("/meals", func(c *gin.Context) {
			handlers.GetMeals(c, firestoreClient)
		})
		api.GET("/nutrition/summary", func(c *gin.Context) {
			handlers.GetNutritionSummary(c, firestoreClient)
		})
		api.GET("/lookup", func(c *gin.Context) {
			handlers.TestLookup(c, pipeline.Lookup)
		})
	}

	return r
}
