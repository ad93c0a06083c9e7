package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/app"
)

func main() {
	csvPath := flag.String("csv", "", "Inventory CSV export to browse")
	flag.Parse()

	if *csvPath == "" {
		fmt.Fprintln(os.Stderr, "Error: an inventory CSV is required. Use -csv <file>")
		os.Exit(1)
	}

	f, err := os.Open(*csvPath)
	if err != nil {
		log.Fatalf("Failed to open %s: %v", *csvPath, err)
	}

	records, err := app.ReadCSV(f)
	f.Close()
	if err != nil {
		log.Fatalf("Failed to read inventory: %v", err)
	}

	enriched, err := app.Enrich(records, time.Now())
	if err != nil {
		log.Fatalf("Failed to enrich inventory: %v", err)
	}

	ti := textinput.New()
	ti.Placeholder = "Filter by name..."
	ti.Focus()

	inventoryTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Name", Width: 36},
			{Title: "Type", Width: 8},
			{Title: "Age", Width: 14},
			{Title: "Updated", Width: 14},
			{Title: "Path", Width: 30},
		}),
		table.WithHeight(20),
	)

	suggestionTable := table.New(
		table.WithColumns([]table.Column{
			{Title: "Category", Width: 22},
			{Title: "Count", Width: 6},
			{Title: "Confidence", Width: 10},
			{Title: "Sample Items", Width: 50},
		}),
		table.WithHeight(20),
	)

	m := model{
		textInput:       ti,
		table:           inventoryTable,
		suggestionTable: suggestionTable,
		records:         enriched,
		marked:          make(map[string]bool),
		mode:            inventoryMode,
	}
	m.applyFilter("")

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}
}
