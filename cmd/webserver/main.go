package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/app"
	webapprun "github.com/CompassHB/Google-Drive-Inventory-Manager/web/run"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	csvPath := flag.String("csv", "", "Inventory CSV to import before serving (overrides config)")
	listenAddr := flag.String("listen", "", "Address to listen on (overrides config)")
	flag.Parse()

	cfg, err := app.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	store, err := app.OpenStore(cfg.Store.DBPath)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer store.Close()

	importPath := cfg.Inventory.CSVPath
	if *csvPath != "" {
		importPath = *csvPath
	}
	if importPath != "" {
		if err := importCSV(store, importPath); err != nil {
			log.Fatalf("Failed to import %s: %v", importPath, err)
		}
	}

	webapp := webapprun.WebApp{
		AppConfig: cfg,
		Store:     store,
	}

	addr := webapp.GetListenAddr()
	if *listenAddr != "" {
		addr = *listenAddr
	}

	log.Printf("Starting server on %s", addr)
	if err := http.ListenAndServe(addr, webapp.GetRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func importCSV(store *app.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	records, err := app.ReadCSV(f)
	if err != nil {
		return err
	}

	enriched, err := app.Enrich(records, time.Now())
	if err != nil {
		return err
	}

	_, err = store.ImportRecords(context.Background(), path, enriched)
	return err
}
