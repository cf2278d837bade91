// Command main runs the demo data seeder for MoodWave.
package main

import (
	"flag"
	"log"

	"moodwave/internal/config"
	"moodwave/internal/database"
	"moodwave/internal/seed"
)

func main() {
	defaults := seed.DefaultOptions()

	numUsers := flag.Int("users", defaults.NumUsers, "Number of demo users to create")
	logsPerUser := flag.Int("logs", defaults.LogsPerUser, "Mood logs per user")
	maxDays := flag.Int("days", defaults.MaxDays, "Spread logs over this many past days")
	density := flag.Float64("density", defaults.ConnectDensity, "Probability of a connection between any two users")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("MoodWave Database Seeder")
	log.Printf("Target: %d users, %d logs each over %d days, density=%.2f, clean=%v\n",
		*numUsers, *logsPerUser, *maxDays, *density, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumUsers:       *numUsers,
		LogsPerUser:    *logsPerUser,
		MaxDays:        *maxDays,
		ConnectDensity: *density,
		ShouldClean:    *shouldClean,
	}
	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
