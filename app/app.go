package app

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"
)

// Run imports the configured CSV export into the store and logs a
// suggestion summary. Used by the one-shot entrypoints; the web server
// calls the pieces itself.
func Run(configPath string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.Inventory.CSVPath == "" {
		return fmt.Errorf("inventory.csv_path is not configured")
	}

	f, err := os.Open(cfg.Inventory.CSVPath)
	if err != nil {
		return fmt.Errorf("failed to open inventory export: %w", err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return err
	}

	enriched, err := Enrich(records, time.Now())
	if err != nil {
		return err
	}

	store, err := OpenStore(cfg.Store.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	source := cfg.Inventory.Source
	if source == "" {
		source = cfg.Inventory.CSVPath
	}

	importID, err := store.ImportRecords(context.Background(), source, enriched)
	if err != nil {
		return err
	}

	for _, g := range Suggest(enriched) {
		log.Printf("Suggestion %s: %d items (%s confidence)", g.Category, g.Count, g.Confidence)
	}

	log.Printf("Import %s completed with %d records", importID, len(enriched))
	return nil
}
