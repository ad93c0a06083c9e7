package models

import "time"

type Kind string

const (
	KindFile   Kind = "File"
	KindFolder Kind = "Folder"
)

type AgeBucket string

const (
	AgeRecent        AgeBucket = "Recent"
	AgeModeratelyOld AgeBucket = "ModeratelyOld"
	AgeOld           AgeBucket = "Old"
	AgeVeryOld       AgeBucket = "VeryOld"
	AgeUnknown       AgeBucket = "Unknown"
)

// Record is one row of a drive inventory export. LastUpdated is the zero
// time when the source value was missing or unparsable. The derived fields
// are populated by app.Enrich and are never set by the CSV reader.
type Record struct {
	Name         string    `json:"name" db:"name"`
	Kind         Kind      `json:"kind" db:"kind"`
	URL          string    `json:"url" db:"url"`
	LastUpdated  time.Time `json:"last_updated" db:"last_updated"`
	EditorName   string    `json:"editor_name" db:"editor_name"`
	EditorEmail  string    `json:"editor_email" db:"editor_email"`
	FolderPath   string    `json:"folder_path" db:"folder_path"`
	ContentCount int       `json:"content_count" db:"content_count"`

	// Derived fields. DaysSinceUpdate is nil when LastUpdated is unknown.
	DaysSinceUpdate *int      `json:"days_since_update" db:"days_since_update"`
	AgeBucket       AgeBucket `json:"age_bucket" db:"age_bucket"`
	FolderDepth     int       `json:"folder_depth" db:"folder_depth"`
	ParentPath      string    `json:"parent_path" db:"parent_path"`
}
