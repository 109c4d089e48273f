package cronjobs

import (
	"log"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/robfig/cron/v3"

	"go-platewise/db"
)

// InitCronJobs starts the scheduled jobs. The nightly rollup rebuilds the
// previous day's summaries from the meal records, picking up anything the
// incremental updates missed.
func InitCronJobs(firestoreClient *firestore.Client) {
	log.Println("Starting Cron Jobs -------------------------------------------------------")
	c := cron.New()

	// Nightly summary rollup: 3 AM UTC for the previous day.
	_, err := c.AddFunc("0 3 * * *", func() {
		log.Println("CronJob: Daily Summary Rollup Running")
		date := time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
		RollupDailySummaries(firestoreClient, date)
	})
	if err != nil {
		log.Println("Error scheduling Daily Summary Rollup:", err)
	}

	c.Start()
}

// RollupDailySummaries recomputes the summary of every user with meals on
// the given day. One user's failure does not stop the rest.
func RollupDailySummaries(firestoreClient *firestore.Client, date string) {
	userIDs, err := db.ListMealUserIDs(firestoreClient, date)
	if err != nil {
		log.Printf("Rollup: error listing users for %s: %v", date, err)
		return
	}

	log.Printf("Rollup: recomputing %d user summaries for %s", len(userIDs), date)
	for _, userID := range userIDs {
		if err := db.RecomputeDailySummary(firestoreClient, userID, date); err != nil {
			log.Printf("Rollup: error recomputing summary for user %s: %v", userID, err)
		}
	}
}
