package app

import (
	"testing"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

func names(records []models.Record) []string {
	var out []string
	for _, r := range records {
		out = append(out, r.Name)
	}
	return out
}

func TestFilter_Apply(t *testing.T) {
	inventory := enrichTestInventory(t)

	tests := []struct {
		name     string
		filter   *Filter
		expected []string
	}{
		{
			name:     "nil filter keeps everything",
			filter:   nil,
			expected: []string{"Projects", "report.pdf", "notes.docx", "Archive", "budget.xlsx", "scan.pdf"},
		},
		{
			name:     "files only",
			filter:   &Filter{Kind: models.KindFile},
			expected: []string{"report.pdf", "notes.docx", "budget.xlsx", "scan.pdf"},
		},
		{
			name:     "folders only",
			filter:   &Filter{Kind: models.KindFolder},
			expected: []string{"Projects", "Archive"},
		},
		{
			name:     "search is case-insensitive",
			filter:   &Filter{Search: "RePoRt"},
			expected: []string{"report.pdf"},
		},
		{
			name:     "date range excludes unknown timestamps",
			filter:   &Filter{UpdatedFrom: daysAgo(600)},
			expected: []string{"Projects", "report.pdf", "notes.docx", "Archive", "budget.xlsx"},
		},
		{
			name:     "date upper bound",
			filter:   &Filter{UpdatedTo: daysAgo(100)},
			expected: []string{"Projects", "report.pdf", "Archive"},
		},
		{
			name:     "age bucket selection",
			filter:   &Filter{AgeBuckets: []models.AgeBucket{models.AgeVeryOld, models.AgeUnknown}},
			expected: []string{"report.pdf", "Archive", "scan.pdf"},
		},
		{
			name:     "combined filters",
			filter:   &Filter{Kind: models.KindFile, AgeBuckets: []models.AgeBucket{models.AgeVeryOld}},
			expected: []string{"report.pdf"},
		},
		{
			name:     "no matches",
			filter:   &Filter{Search: "zzz"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(tt.filter.Apply(inventory))
			if len(got) != len(tt.expected) {
				t.Fatalf("expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}
