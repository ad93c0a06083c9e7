package main

import (
	"flag"
	"log"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/app"
)

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	if err := app.Run(*configPath); err != nil {
		log.Fatalf("error: %v", err)
	}
}
