package models

import "time"

type AgeBucketStats struct {
	Bucket AgeBucket `json:"bucket"`
	Count  int64     `json:"count"`
}

type MonthStats struct {
	Month   string `json:"month"` // YYYY-MM
	Files   int64  `json:"files"`
	Folders int64  `json:"folders"`
}

type InventoryStats struct {
	TotalItems      int64            `json:"total_items"`
	TotalFiles      int64            `json:"total_files"`
	TotalFolders    int64            `json:"total_folders"`
	MarkedItems     int64            `json:"marked_items"`
	AgeDistribution []AgeBucketStats `json:"age_distribution"`
	Activity        []MonthStats     `json:"activity"`
	OldestUpdate    time.Time        `json:"oldest_update"`
	NewestUpdate    time.Time        `json:"newest_update"`
}
