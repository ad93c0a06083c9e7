package app

import (
	"strings"
	"time"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

// Filter narrows an enriched record set. Zero values mean "no constraint".
// When a date bound is set, records with an unknown LastUpdated are
// excluded, matching how the dashboard's date range behaves.
type Filter struct {
	Kind        models.Kind
	Search      string
	UpdatedFrom time.Time
	UpdatedTo   time.Time
	AgeBuckets  []models.AgeBucket
}

// Apply returns the matching records in input order. The input slice is
// never modified.
func (f *Filter) Apply(records []models.Record) []models.Record {
	if f == nil {
		return records
	}
	var out []models.Record
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

func (f *Filter) matches(r models.Record) bool {
	if f.Kind != "" && r.Kind != f.Kind {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(r.Name), strings.ToLower(f.Search)) {
		return false
	}
	if !f.UpdatedFrom.IsZero() {
		if r.LastUpdated.IsZero() || r.LastUpdated.Before(f.UpdatedFrom) {
			return false
		}
	}
	if !f.UpdatedTo.IsZero() {
		if r.LastUpdated.IsZero() || r.LastUpdated.After(f.UpdatedTo) {
			return false
		}
	}
	if len(f.AgeBuckets) > 0 {
		found := false
		for _, b := range f.AgeBuckets {
			if r.AgeBucket == b {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
