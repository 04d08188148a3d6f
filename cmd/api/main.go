package main

import (
	"context"
	"log"

	"github.com/iam-fast/meyers-scraper/internal/config"
	"github.com/iam-fast/meyers-scraper/internal/export"
	"github.com/iam-fast/meyers-scraper/internal/kanpla"
	"github.com/iam-fast/meyers-scraper/internal/menu"
	"github.com/iam-fast/meyers-scraper/internal/router"
	"github.com/iam-fast/meyers-scraper/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}

	logger := config.NewLogger(cfg.LogLevel)

	// ───────────────────────── CLIENT ─────────────────────────
	defaults := kanpla.Params{
		SchoolID:      cfg.SchoolID,
		Language:      cfg.Language,
		TargetOfferID: cfg.TargetOfferID,
	}
	client := kanpla.NewHTTPClient(cfg.APIBaseURL, cfg.UserAgent, defaults, cfg.Timeout(), logger)

	service := menu.NewService(client, defaults, logger)

	// ───────────────────────── EXPORT SINK ─────────────────────────
	var store export.ObjectStore
	if cfg.ExportConfigured() {
		s3Client, err := storage.NewS3Client(context.Background(), storage.Options{
			Endpoint:  cfg.ExportEndpoint,
			AccessKey: cfg.ExportAccessKey,
			SecretKey: cfg.ExportSecretKey,
			Bucket:    cfg.ExportBucket,
		})
		if err != nil {
			log.Fatal("❌ Export storage init failed:", err)
		}
		store = s3Client
	}
	exporter := export.NewExporter(cfg.OutputFile, store, logger)

	// ───────────────────────── ROUTES ─────────────────────────
	handler := menu.NewHandler(service, exporter, logger)
	r := router.NewRouter(handler)

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://%s", cfg.APIAddr())
	if err := r.Run(cfg.APIAddr()); err != nil {
		log.Fatal("❌ Server failed:", err)
	}
}
