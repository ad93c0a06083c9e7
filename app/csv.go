package app

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

// Column headers of a drive inventory export. Matching is case-insensitive
// and ignores surrounding whitespace; only Name and Type are required.
const (
	colName        = "name"
	colType        = "type"
	colURL         = "url"
	colLastUpdated = "last updated"
	colEditorName  = "last edited by"
	colEditorEmail = "last editor email"
	colFolderPath  = "folder path"
	colContent     = "content count"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006",
}

// ReadCSV decodes an inventory export into raw records. Optional columns
// may be missing entirely; an unparsable timestamp or count degrades to the
// zero value for that record rather than failing the read. Required-field
// validation happens later, in Enrich.
func ReadCSV(r io.Reader) ([]models.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty csv input")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	if _, ok := cols[colName]; !ok {
		return nil, fmt.Errorf("csv header is missing a %q column", "Name")
	}
	if _, ok := cols[colType]; !ok {
		return nil, fmt.Errorf("csv header is missing a %q column", "Type")
	}

	field := func(row []string, col string) string {
		idx, ok := cols[col]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var records []models.Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv row %d: %w", len(records)+2, err)
		}

		count, _ := strconv.Atoi(field(row, colContent))
		if count < 0 {
			count = 0
		}

		records = append(records, models.Record{
			Name:         field(row, colName),
			Kind:         models.Kind(field(row, colType)),
			URL:          field(row, colURL),
			LastUpdated:  parseTimestamp(field(row, colLastUpdated)),
			EditorName:   field(row, colEditorName),
			EditorEmail:  field(row, colEditorEmail),
			FolderPath:   field(row, colFolderPath),
			ContentCount: count,
		})
	}

	return records, nil
}

// parseTimestamp tries the known export layouts and returns the zero time
// when none match. Absence is the error signal here.
func parseTimestamp(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// WriteCSV emits records with their derived columns appended, the shape the
// dashboard offers as "download filtered data".
func WriteCSV(w io.Writer, records []models.Record) error {
	cw := csv.NewWriter(w)

	header := []string{
		"Name", "Type", "URL", "Last Updated", "Last Edited By",
		"Last Editor Email", "Folder Path", "Content Count",
		"Days Since Update", "Age Bucket", "Folder Depth", "Parent Folder",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, r := range records {
		updated := ""
		if !r.LastUpdated.IsZero() {
			updated = r.LastUpdated.Format(time.RFC3339)
		}
		days := ""
		if r.DaysSinceUpdate != nil {
			days = strconv.Itoa(*r.DaysSinceUpdate)
		}
		row := []string{
			r.Name,
			string(r.Kind),
			r.URL,
			updated,
			r.EditorName,
			r.EditorEmail,
			r.FolderPath,
			strconv.Itoa(r.ContentCount),
			days,
			string(r.AgeBucket),
			strconv.Itoa(r.FolderDepth),
			r.ParentPath,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
