package webapp

import (
	"log"
	"net/http"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/app"
	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

// suggestions evaluates the archive rules over the (optionally filtered)
// current import, the same way the dashboard runs them over whatever the
// user has narrowed down to.
func (webapp *WebApp) suggestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := webapp.Store.ListRecords(r.Context(), parseFilter(r))
		if err != nil {
			log.Printf("Unable to list inventory for suggestions: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		groups := app.Suggest(records)
		if groups == nil {
			groups = []models.SuggestionGroup{}
		}
		writeJSON(w, http.StatusOK, groups)
	}
}
