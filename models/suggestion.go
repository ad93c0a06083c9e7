package models

type Confidence string

const (
	ConfidenceHigh   Confidence = "High"
	ConfidenceMedium Confidence = "Medium"
	ConfidenceLow    Confidence = "Low"
)

// SuggestionGroup is one rule's archive candidates. Items is capped for
// display by some rules; Count is always the true match count, so callers
// must not assume len(Items) == Count.
type SuggestionGroup struct {
	Category   string     `json:"category"`
	Reason     string     `json:"reason"`
	Confidence Confidence `json:"confidence"`
	Items      []string   `json:"items"`
	Count      int        `json:"count"`
}
