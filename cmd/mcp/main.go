package main

import (
	"context"
	"log"

	"github.com/iam-fast/meyers-scraper/internal/config"
	"github.com/iam-fast/meyers-scraper/internal/kanpla"
	"github.com/iam-fast/meyers-scraper/internal/mcpserver"
	"github.com/iam-fast/meyers-scraper/internal/menu"
)

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

	server := mcpserver.New(service)

	if cfg.MCPHTTP {
		if err := mcpserver.RunHTTP(cfg.MCPAddr(), server, logger); err != nil {
			log.Fatal("❌ MCP server failed:", err)
		}
		return
	}

	// Stdio is the default transport; logs stay on stderr so they do
	// not corrupt the protocol stream.
	if err := mcpserver.RunStdio(context.Background(), server); err != nil {
		log.Fatal("❌ MCP server failed:", err)
	}
}
