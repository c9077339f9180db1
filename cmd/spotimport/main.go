package main

import (
	"flag"
	"log"
	"os"

	"github.com/DecayAI/windwizard/internal/config"
	"github.com/DecayAI/windwizard/internal/entities"
	"github.com/DecayAI/windwizard/internal/integration"
	"github.com/DecayAI/windwizard/internal/repository"
)

func main() {
	// Configure logging
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	var (
		sourceURL = flag.String("url", "", "spot directory page to scrape")
		seed      = flag.Bool("seed", false, "import the bundled demo spots instead of scraping")
		dbPath    = flag.String("db", config.DefaultSpotDBPath, "path to the spot database")
	)
	flag.Parse()

	if *sourceURL == "" && !*seed {
		log.Fatal("Either -url or -seed is required")
	}

	repo, err := repository.NewSQLiteSpotRepository(*dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize spot repository: %v", err)
	}
	defer repo.Close()

	var spots []entities.Spot
	if *seed {
		spots = repository.DefaultSpots
		log.Printf("Importing %d bundled spots", len(spots))
	} else {
		spots, err = integration.NewSpotScraper(*sourceURL).FetchSpots()
		if err != nil {
			log.Fatalf("Failed to scrape spot directory: %v", err)
		}
	}

	if err := repo.SaveSpots(spots); err != nil {
		log.Fatalf("Failed to save spots: %v", err)
	}

	count, err := repo.CountSpots()
	if err != nil {
		log.Fatalf("Failed to count spots: %v", err)
	}
	log.Printf("Spot database at %s now holds %d spots", repo.DBPath, count)
}
