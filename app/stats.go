package app

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

// Fixed display order for age distributions.
var bucketOrder = []models.AgeBucket{
	models.AgeRecent,
	models.AgeModeratelyOld,
	models.AgeOld,
	models.AgeVeryOld,
	models.AgeUnknown,
}

// ComputeStats summarizes an enriched record set in memory.
func ComputeStats(records []models.Record) models.InventoryStats {
	stats := models.InventoryStats{}
	bucketCounts := make(map[models.AgeBucket]int64)
	monthly := make(map[string]*models.MonthStats)

	for _, r := range records {
		stats.TotalItems++
		switch r.Kind {
		case models.KindFile:
			stats.TotalFiles++
		case models.KindFolder:
			stats.TotalFolders++
		}
		bucketCounts[r.AgeBucket]++

		if r.LastUpdated.IsZero() {
			continue
		}
		if stats.OldestUpdate.IsZero() || r.LastUpdated.Before(stats.OldestUpdate) {
			stats.OldestUpdate = r.LastUpdated
		}
		if r.LastUpdated.After(stats.NewestUpdate) {
			stats.NewestUpdate = r.LastUpdated
		}

		month := r.LastUpdated.Format("2006-01")
		ms, ok := monthly[month]
		if !ok {
			ms = &models.MonthStats{Month: month}
			monthly[month] = ms
		}
		if r.Kind == models.KindFolder {
			ms.Folders++
		} else {
			ms.Files++
		}
	}

	for _, bucket := range bucketOrder {
		if count := bucketCounts[bucket]; count > 0 {
			stats.AgeDistribution = append(stats.AgeDistribution, models.AgeBucketStats{
				Bucket: bucket,
				Count:  count,
			})
		}
	}

	for _, ms := range monthly {
		stats.Activity = append(stats.Activity, *ms)
	}
	sort.Slice(stats.Activity, func(i, j int) bool {
		return stats.Activity[i].Month < stats.Activity[j].Month
	})

	return stats
}

// Stats summarizes the current import straight from sqlite, plus the mark
// count, for the web layer.
func (s *Store) Stats(ctx context.Context) (*models.InventoryStats, error) {
	importID, err := s.CurrentImport(ctx)
	if err != nil {
		return nil, err
	}
	stats := &models.InventoryStats{}
	if importID == "" {
		return stats, nil
	}

	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE import_id = ?`, importID).Scan(&stats.TotalItems)
	if err != nil {
		return nil, err
	}
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE import_id = ? AND kind = 'File'`, importID).Scan(&stats.TotalFiles)
	if err != nil {
		return nil, err
	}
	err = s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM items WHERE import_id = ? AND kind = 'Folder'`, importID).Scan(&stats.TotalFolders)
	if err != nil {
		return nil, err
	}
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM archive_marks`).Scan(&stats.MarkedItems)
	if err != nil {
		return nil, err
	}

	var oldest, newest sql.NullInt64
	err = s.db.QueryRowContext(ctx, `
        SELECT MIN(last_updated), MAX(last_updated)
        FROM items
        WHERE import_id = ? AND last_updated > 0
    `, importID).Scan(&oldest, &newest)
	if err != nil {
		return nil, err
	}
	if oldest.Valid && oldest.Int64 > 0 {
		stats.OldestUpdate = time.Unix(oldest.Int64, 0).UTC()
	}
	if newest.Valid && newest.Int64 > 0 {
		stats.NewestUpdate = time.Unix(newest.Int64, 0).UTC()
	}

	bucketCounts := make(map[models.AgeBucket]int64)
	rows, err := s.db.QueryContext(ctx, `
        SELECT age_bucket, COUNT(*)
        FROM items
        WHERE import_id = ?
        GROUP BY age_bucket
    `, importID)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var bucket string
		var count int64
		if err := rows.Scan(&bucket, &count); err != nil {
			rows.Close()
			return nil, err
		}
		bucketCounts[models.AgeBucket(bucket)] = count
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, bucket := range bucketOrder {
		if count := bucketCounts[bucket]; count > 0 {
			stats.AgeDistribution = append(stats.AgeDistribution, models.AgeBucketStats{
				Bucket: bucket,
				Count:  count,
			})
		}
	}

	rows, err = s.db.QueryContext(ctx, `
        SELECT
            strftime('%Y-%m', last_updated, 'unixepoch') AS month,
            SUM(CASE WHEN kind = 'File' THEN 1 ELSE 0 END),
            SUM(CASE WHEN kind = 'Folder' THEN 1 ELSE 0 END)
        FROM items
        WHERE import_id = ? AND last_updated > 0
        GROUP BY month
        ORDER BY month
    `, importID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var ms models.MonthStats
		if err := rows.Scan(&ms.Month, &ms.Files, &ms.Folders); err != nil {
			return nil, err
		}
		stats.Activity = append(stats.Activity, ms)
	}

	return stats, rows.Err()
}
