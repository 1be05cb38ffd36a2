package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"PortfolioPulse/internal/collector"
	"PortfolioPulse/internal/config"
	"PortfolioPulse/internal/exporter"
	"PortfolioPulse/internal/pipeline"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] PortfolioPulse starting...")

	_ = godotenv.Load()

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewMarketAPIFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	p := pipeline.New(
		collector.NewCollector(fetcher),
		cfg.Instruments(),
		exporter.NewExporter(cfg.Output.File),
	)

	summary, err := p.Run()
	if err != nil {
		log.Fatalf("[FATAL] report export: %v", err)
	}

	fmt.Print(pipeline.FormatSummary(summary))
	log.Println("[INFO] PortfolioPulse finished")
}
