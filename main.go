package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"go-platewise/cronjobs"
	"go-platewise/db"
	"go-platewise/nutrition"
	"go-platewise/processor"
	"go-platewise/routes"
	"go-platewise/vision"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// Print and check env
	if os.Getenv("NUTRITIONIX_APP_ID") != "" {
		fmt.Println("NUTRITIONIX credentials loaded")
	}

	// Vision backend is required before serving any analysis.
	analyzer, err := vision.NewAnalyzer()
	if err != nil {
		log.Fatalf("Failed to initialize vision model: %v", err)
	}

	// Init firestore
	firestoreClient, err := db.InitFirestore()
	if err != nil {
		log.Fatalf("Failed to initialize Firestore: %v", err)
	}
	defer db.CloseFirestore() // Firestore client is closed on exit

	// Initialize cron jobs
	cronjobs.InitCronJobs(firestoreClient)

	pipeline := processor.NewPipeline(analyzer, nutrition.NewClient())

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(firestoreClient, pipeline)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
