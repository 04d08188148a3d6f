package main

import (
	"context"
	"fmt"
	"log"

	"github.com/iam-fast/meyers-scraper/internal/config"
	"github.com/iam-fast/meyers-scraper/internal/export"
	"github.com/iam-fast/meyers-scraper/internal/kanpla"
	"github.com/iam-fast/meyers-scraper/internal/menu"
)

// One-shot pipeline: fetch, normalize, print a summary, write the JSON
// export file.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}

	logger := config.NewLogger(cfg.LogLevel)

	defaults := kanpla.Params{
		SchoolID:      cfg.SchoolID,
		Language:      cfg.Language,
		TargetOfferID: cfg.TargetOfferID,
	}
	client := kanpla.NewHTTPClient(cfg.APIBaseURL, cfg.UserAgent, defaults, cfg.Timeout(), logger)
	service := menu.NewService(client, defaults, logger)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout())
	defer cancel()

	menus, _, err := service.FetchAll(ctx, kanpla.Params{})
	if err != nil {
		log.Fatalf("❌ Scraper failed: %v", err)
	}

	if menus.Len() == 0 {
		log.Println("❌ No menu data found")
		return
	}

	fmt.Print(export.Summary(menus))

	if err := export.WriteFile(menus, cfg.OutputFile); err != nil {
		log.Fatalf("❌ Failed to save data: %v", err)
	}
	fmt.Printf("\n✅ Data saved to %s\n", cfg.OutputFile)
}
