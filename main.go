package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cpifetcher/internal/bls"
	"cpifetcher/internal/config"
	"cpifetcher/internal/coordinator"
	"cpifetcher/internal/exporter"
	"cpifetcher/internal/fetcher"
	"cpifetcher/internal/release"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create context with cancellation for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	// Create fetchers dynamically from configuration
	var fetchers []fetcher.Fetcher

	// One API fetcher per configured CPI category
	for _, category := range cfg.Categories {
		seriesID, err := bls.Resolve(category)
		if err != nil {
			log.Fatalf("Failed to resolve category: %v (known: %v)", err, bls.Categories())
		}
		fetchers = append(fetchers, bls.NewSeriesFetcher(
			cfg.BLSAPIKey,
			category,
			seriesID,
			cfg.BLSBaseURL,
			cfg.StartYear,
			cfg.EndYear,
		))
	}

	// The news-release table fetcher needs a browser, so it is opt-in
	if cfg.ScrapeRelease {
		fetchers = append(fetchers, release.NewFetcher(
			release.NewChromeRenderer(cfg.Headless),
			cfg.ReleaseURL,
		))
	}

	// Create coordinator
	coord := coordinator.New(fetchers, exporter.New(cfg.OutputDir), exporter.Format(cfg.Format))

	// Add timeout to prevent hanging indefinitely
	fetchCtx, fetchCancel := context.WithTimeout(ctx, 5*time.Minute)
	defer fetchCancel()

	// Run all fetchers sequentially
	fmt.Println("Fetching CPI series...")
	fmt.Println("================================================")
	if err := coord.Run(fetchCtx); err != nil {
		log.Fatalf("Coordinator failed: %v", err)
	}

	fmt.Println("================================================")
	fmt.Println("All fetches completed!")
}
