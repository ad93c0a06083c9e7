package webapp

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/app"
	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// parseFilter reads the query parameters shared by the inventory,
// suggestions, tree and export endpoints: type, q, from, to (YYYY-MM-DD)
// and buckets (comma-separated age buckets).
func parseFilter(r *http.Request) *app.Filter {
	q := r.URL.Query()
	filter := &app.Filter{
		Search: q.Get("q"),
	}

	switch q.Get("type") {
	case "files":
		filter.Kind = models.KindFile
	case "folders":
		filter.Kind = models.KindFolder
	}

	if from := q.Get("from"); from != "" {
		if t, err := time.Parse("2006-01-02", from); err == nil {
			filter.UpdatedFrom = t
		}
	}
	if to := q.Get("to"); to != "" {
		if t, err := time.Parse("2006-01-02", to); err == nil {
			// Inclusive day bound.
			filter.UpdatedTo = t.AddDate(0, 0, 1).Add(-time.Second)
		}
	}

	if buckets := q.Get("buckets"); buckets != "" {
		for _, b := range strings.Split(buckets, ",") {
			b = strings.TrimSpace(b)
			if b != "" {
				filter.AgeBuckets = append(filter.AgeBuckets, models.AgeBucket(b))
			}
		}
	}

	return filter
}
