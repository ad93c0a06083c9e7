package app

import (
	"context"
	"testing"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(enrichTestInventory(t))

	if stats.TotalItems != 6 {
		t.Errorf("expected 6 items, got %d", stats.TotalItems)
	}
	if stats.TotalFiles != 4 || stats.TotalFolders != 2 {
		t.Errorf("expected 4 files / 2 folders, got %d / %d", stats.TotalFiles, stats.TotalFolders)
	}

	buckets := make(map[models.AgeBucket]int64)
	for _, b := range stats.AgeDistribution {
		buckets[b.Bucket] = b.Count
	}
	if buckets[models.AgeRecent] != 1 || buckets[models.AgeVeryOld] != 2 || buckets[models.AgeUnknown] != 1 {
		t.Errorf("unexpected age distribution: %+v", stats.AgeDistribution)
	}

	if stats.OldestUpdate.IsZero() || stats.NewestUpdate.IsZero() {
		t.Error("expected known oldest/newest updates")
	}
	if stats.OldestUpdate.After(stats.NewestUpdate) {
		t.Error("oldest update is after newest")
	}

	if len(stats.Activity) == 0 {
		t.Fatal("expected monthly activity")
	}
	for i := 1; i < len(stats.Activity); i++ {
		if stats.Activity[i-1].Month >= stats.Activity[i].Month {
			t.Error("activity months are not sorted ascending")
		}
	}
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)
	if stats.TotalItems != 0 || len(stats.AgeDistribution) != 0 || len(stats.Activity) != 0 {
		t.Errorf("expected zero stats, got %+v", stats)
	}
}

func TestStoreStats(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	if _, err := store.ImportRecords(ctx, "test", enrichTestInventory(t)); err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if err := store.Mark(ctx, "report.pdf"); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	stats, err := store.Stats(ctx)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalItems != 6 || stats.TotalFiles != 4 || stats.TotalFolders != 2 {
		t.Errorf("unexpected totals: %+v", stats)
	}
	if stats.MarkedItems != 1 {
		t.Errorf("expected 1 marked item, got %d", stats.MarkedItems)
	}

	inMemory := ComputeStats(enrichTestInventory(t))
	if int64(len(stats.AgeDistribution)) != int64(len(inMemory.AgeDistribution)) {
		t.Errorf("store and in-memory age distributions disagree: %+v vs %+v",
			stats.AgeDistribution, inMemory.AgeDistribution)
	}
}

func TestStoreStats_EmptyStore(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	stats, err := store.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalItems != 0 {
		t.Errorf("expected empty stats, got %+v", stats)
	}
}
