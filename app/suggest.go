package app

import (
	"regexp"
	"strings"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

const (
	veryOldItemCap     = 10
	duplicateItemCap   = 10
	largeFolderItemCap = 5

	largeFolderMinContent = 10
)

var (
	versionTokenPattern = regexp.MustCompile(`(_copy|_v\d+|\(\d+\)|_final|_draft)`)
	officeExtPattern    = regexp.MustCompile(`\.(pdf|docx?|xlsx?|pptx?)$`)
)

// Suggest scans an enriched record set and returns one group per matching
// rule, always in the same rule order. Rules with no matches contribute
// nothing; empty input yields an empty result.
func Suggest(records []models.Record) []models.SuggestionGroup {
	var groups []models.SuggestionGroup

	if g, ok := veryOldFiles(records); ok {
		groups = append(groups, g)
	}
	if g, ok := emptyFolders(records); ok {
		groups = append(groups, g)
	}
	if g, ok := potentialDuplicates(records); ok {
		groups = append(groups, g)
	}
	if g, ok := largeOldFolders(records); ok {
		groups = append(groups, g)
	}

	return groups
}

func veryOldFiles(records []models.Record) (models.SuggestionGroup, bool) {
	var names []string
	for _, r := range records {
		if r.Kind == models.KindFile && r.AgeBucket == models.AgeVeryOld {
			names = append(names, r.Name)
		}
	}
	if len(names) == 0 {
		return models.SuggestionGroup{}, false
	}
	return models.SuggestionGroup{
		Category:   "Very Old Files",
		Reason:     "Files not accessed in over 1 year",
		Confidence: models.ConfidenceHigh,
		Items:      capItems(names, veryOldItemCap),
		Count:      len(names),
	}, true
}

func emptyFolders(records []models.Record) (models.SuggestionGroup, bool) {
	var names []string
	for _, r := range records {
		if r.Kind == models.KindFolder && r.ContentCount == 0 {
			names = append(names, r.Name)
		}
	}
	if len(names) == 0 {
		return models.SuggestionGroup{}, false
	}
	return models.SuggestionGroup{
		Category:   "Empty Folders",
		Reason:     "Folders containing no files",
		Confidence: models.ConfidenceHigh,
		Items:      names,
		Count:      len(names),
	}, true
}

// potentialDuplicates folds file names into canonical patterns and flags
// every name whose pattern was already claimed by an earlier file. The
// first occurrence is flagged too, once the collision appears.
func potentialDuplicates(records []models.Record) (models.SuggestionGroup, bool) {
	firstSeen := make(map[string]string)
	flagged := make(map[string]struct{})
	var names []string

	flag := func(name string) {
		if _, ok := flagged[name]; ok {
			return
		}
		flagged[name] = struct{}{}
		names = append(names, name)
	}

	for _, r := range records {
		if r.Kind != models.KindFile {
			continue
		}
		pattern := namePattern(r.Name)
		if first, ok := firstSeen[pattern]; ok {
			flag(first)
			flag(r.Name)
		} else {
			firstSeen[pattern] = r.Name
		}
	}

	if len(names) == 0 {
		return models.SuggestionGroup{}, false
	}
	return models.SuggestionGroup{
		Category:   "Potential Duplicates",
		Reason:     "Files with similar names that might be duplicates",
		Confidence: models.ConfidenceMedium,
		Items:      capItems(names, duplicateItemCap),
		Count:      len(names),
	}, true
}

func largeOldFolders(records []models.Record) (models.SuggestionGroup, bool) {
	var names []string
	for _, r := range records {
		if r.Kind != models.KindFolder {
			continue
		}
		if r.AgeBucket != models.AgeOld && r.AgeBucket != models.AgeVeryOld {
			continue
		}
		if r.ContentCount > largeFolderMinContent {
			names = append(names, r.Name)
		}
	}
	if len(names) == 0 {
		return models.SuggestionGroup{}, false
	}
	return models.SuggestionGroup{
		Category:   "Large Old Folders",
		Reason:     "Folders with many files that haven't been updated recently",
		Confidence: models.ConfidenceMedium,
		Items:      capItems(names, largeFolderItemCap),
		Count:      len(names),
	}, true
}

// namePattern canonicalizes a file name for duplicate detection: lowercase,
// drop copy/version tokens, then drop a trailing office document extension.
// The token strip runs before the extension strip; "plan_v2.docx" and
// "plan_final.docx" both reduce to "plan".
func namePattern(name string) string {
	p := strings.ToLower(name)
	p = versionTokenPattern.ReplaceAllString(p, "")
	return officeExtPattern.ReplaceAllString(p, "")
}

func capItems(names []string, max int) []string {
	if len(names) <= max {
		return names
	}
	return names[:max:max]
}
