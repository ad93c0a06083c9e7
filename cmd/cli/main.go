package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/app"
	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

func main() {
	csvPath := flag.String("csv", "", "Inventory CSV export to analyze")
	search := flag.String("q", "", "Filter by name substring")
	itemType := flag.String("type", "", "Filter by type: files or folders")
	after := flag.String("updated-after", "", `Only items updated after, e.g. "2024-01-01" or "6 months ago"`)
	before := flag.String("updated-before", "", `Only items updated before, e.g. "last year"`)
	showStats := flag.Bool("stats", false, "Print inventory statistics")
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "Error: an inventory CSV is required. Use -csv <file>")
		os.Exit(1)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *csvPath, err)
	}
	defer f.Close()

	records, err := app.ReadCSV(f)
	if err != nil {
		log.Fatalf("Failed to read inventory: %v", err)
	}

	now := time.Now()
	enriched, err := app.Enrich(records, now)
	if err != nil {
		log.Fatalf("Failed to enrich inventory: %v", err)
	}

	filter := &app.Filter{Search: *search}
	switch *itemType {
	case "files":
		filter.Kind = models.KindFile
	case "folders":
		filter.Kind = models.KindFolder
	case "":
	default:
		log.Fatalf("Unknown -type %q, expected files or folders", *itemType)
	}
	if *after != "" {
		filter.UpdatedFrom = parseDateExpr(*after, now)
	}
	if *before != "" {
		filter.UpdatedTo = parseDateExpr(*before, now)
	}

	filtered := filter.Apply(enriched)

	if *showStats {
		printStats(app.ComputeStats(filtered))
	}

	groups := app.Suggest(filtered)
	if len(groups) == 0 {
		fmt.Println("No archive suggestions. The inventory looks well organized.")
		return
	}

	for _, g := range groups {
		fmt.Printf("%s (%d items, %s confidence)\n", g.Category, g.Count, g.Confidence)
		fmt.Printf("  %s\n", g.Reason)
		for _, item := range g.Items {
			fmt.Printf("  - %s\n", item)
		}
		if g.Count > len(g.Items) {
			fmt.Printf("  ... and %d more\n", g.Count-len(g.Items))
		}
	}
}

// parseDateExpr accepts either an exact date or a natural-language
// expression like "6 months ago".
func parseDateExpr(expr string, now time.Time) time.Time {
	if t, err := time.Parse("2006-01-02", expr); err == nil {
		return t
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	result, err := w.Parse(expr, now)
	if err != nil || result == nil {
		log.Fatalf("Cannot parse date expression %q", expr)
	}
	return result.Time
}

func printStats(stats models.InventoryStats) {
	fmt.Printf("Items: %d (%d files, %d folders)\n", stats.TotalItems, stats.TotalFiles, stats.TotalFolders)
	if !stats.NewestUpdate.IsZero() {
		fmt.Printf("Last activity: %s\n", humanize.Time(stats.NewestUpdate))
	}
	if !stats.OldestUpdate.IsZero() {
		fmt.Printf("Oldest item: %s\n", humanize.Time(stats.OldestUpdate))
	}
	for _, b := range stats.AgeDistribution {
		fmt.Printf("  %-14s %d\n", b.Bucket, b.Count)
	}
	fmt.Println()
}
