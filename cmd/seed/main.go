// Command main runs the database seeder for Atrium.
package main

import (
	"flag"
	"log"

	"atrium/internal/config"
	"atrium/internal/database"
	"atrium/internal/seed"
)

func main() {
	// Parse command line flags
	numUsers := flag.Int("users", 25, "Number of users to create")
	numArticles := flag.Int("articles", 60, "Number of articles to create")
	numVideos := flag.Int("videos", 40, "Number of videos to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	dryRun := flag.Bool("dry-run", false, "Log what would be created without writing")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d articles, %d videos, clean=%v\n",
		*numUsers, *numArticles, *numVideos, *shouldClean)

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumArticles: *numArticles,
		NumVideos:   *numVideos,
		ShouldClean: *shouldClean,
		DryRun:      *dryRun,
	})
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Println("📧 All test users have the password: password123")
}
