package app

import (
	"fmt"
	"math"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

// ValidationError rejects a whole import batch. Index is the position of
// the first offending record in the input.
type ValidationError struct {
	Index int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Enrich validates raw records and computes the derived fields relative to
// now. The result has the same length and order as the input; no partial
// output is returned when validation fails. Field-level problems (an
// unparsable timestamp shows up as a zero LastUpdated) degrade to
// Unknown instead of failing the batch.
func Enrich(records []models.Record, now time.Time) ([]models.Record, error) {
	enriched := make([]models.Record, 0, len(records))
	for i, r := range records {
		if err := validateRecord(r); err != nil {
			return nil, &ValidationError{Index: i, Err: err}
		}
		enriched = append(enriched, derive(r, now))
	}
	return enriched, nil
}

func validateRecord(r models.Record) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required),
		validation.Field(&r.Kind,
			validation.Required,
			validation.In(models.KindFile, models.KindFolder).Error("must be File or Folder"),
		),
	)
}

func derive(r models.Record, now time.Time) models.Record {
	if r.LastUpdated.IsZero() {
		r.DaysSinceUpdate = nil
	} else {
		days := int(math.Floor(now.Sub(r.LastUpdated).Hours() / 24))
		r.DaysSinceUpdate = &days
	}
	r.AgeBucket = ageBucket(r.DaysSinceUpdate)
	r.FolderDepth = strings.Count(r.FolderPath, "/")
	r.ParentPath = parentPath(r.FolderPath)
	return r
}

// ageBucket thresholds are inclusive on the upper bound: exactly 30 days is
// still Recent, 365 still Old. Negative days (future timestamps) count as
// Recent.
func ageBucket(days *int) models.AgeBucket {
	switch {
	case days == nil:
		return models.AgeUnknown
	case *days <= 30:
		return models.AgeRecent
	case *days <= 90:
		return models.AgeModeratelyOld
	case *days <= 365:
		return models.AgeOld
	default:
		return models.AgeVeryOld
	}
}

func parentPath(folderPath string) string {
	idx := strings.LastIndex(folderPath, "/")
	if idx < 0 {
		return "Root"
	}
	return folderPath[:idx]
}
