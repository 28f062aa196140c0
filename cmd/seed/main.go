// Command seed populates the database with fixture or generated data.
package main

import (
	"flag"
	"log"

	"warbler/internal/config"
	"warbler/internal/database"
	"warbler/internal/seed"
)

func main() {
	csvDir := flag.String("csv", "", "Directory containing users.csv, messages.csv, and follows.csv")
	manifest := flag.String("manifest", "", "Path to a fixtures.yml manifest")
	generate := flag.Bool("generate", false, "Generate fake data instead of loading fixtures")
	numUsers := flag.Int("users", 50, "Number of users to generate")
	numMessages := flag.Int("messages", 200, "Number of messages to generate")
	numFollows := flag.Int("follows", 300, "Number of follow edges to generate")
	numLikes := flag.Int("likes", 400, "Number of likes to generate")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	testAccount := flag.Bool("test-account", true, "Create the demo test account")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	switch {
	case *manifest != "":
		if err := s.ApplyManifest(*manifest); err != nil {
			log.Fatalf("Manifest seeding failed: %v", err)
		}
	case *csvDir != "":
		if err := s.LoadCSVDir(*csvDir); err != nil {
			log.Fatalf("CSV seeding failed: %v", err)
		}
		if *testAccount {
			if _, err := s.CreateTestAccount(); err != nil {
				log.Fatalf("Test account seeding failed: %v", err)
			}
		}
	case *generate:
		if err := s.Generate(seed.GenerateOptions{
			NumUsers:    *numUsers,
			NumMessages: *numMessages,
			NumFollows:  *numFollows,
			NumLikes:    *numLikes,
		}); err != nil {
			log.Fatalf("Generation failed: %v", err)
		}
		if *testAccount {
			if _, err := s.CreateTestAccount(); err != nil {
				log.Fatalf("Test account seeding failed: %v", err)
			}
		}
	default:
		log.Fatal("Nothing to do: pass -csv, -manifest, or -generate")
	}

	log.Println("All done! Your database is now populated.")
}
