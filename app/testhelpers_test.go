package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

// Fixed reference time so derived fields are stable across runs.
var testNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func daysAgo(days int) time.Time {
	return testNow.AddDate(0, 0, -days)
}

// setupTestStore creates a temporary sqlite-backed store
func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "driveinv_test_*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	store, err := OpenStore(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to open store: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}
	return store, cleanup
}

// testInventory is a small mixed inventory covering every age bucket.
func testInventory() []models.Record {
	return []models.Record{
		{Name: "Projects", Kind: models.KindFolder, FolderPath: "Projects", ContentCount: 12, LastUpdated: daysAgo(200)},
		{Name: "report.pdf", Kind: models.KindFile, FolderPath: "Projects", LastUpdated: daysAgo(400)},
		{Name: "notes.docx", Kind: models.KindFile, FolderPath: "Projects", LastUpdated: daysAgo(10)},
		{Name: "Archive", Kind: models.KindFolder, FolderPath: "Projects/Archive", ContentCount: 0, LastUpdated: daysAgo(500)},
		{Name: "budget.xlsx", Kind: models.KindFile, FolderPath: "Projects/Archive", LastUpdated: daysAgo(60)},
		{Name: "scan.pdf", Kind: models.KindFile, FolderPath: ""},
	}
}

func enrichTestInventory(t *testing.T) []models.Record {
	t.Helper()
	enriched, err := Enrich(testInventory(), testNow)
	if err != nil {
		t.Fatalf("enrich failed: %v", err)
	}
	return enriched
}
