package webapp

import (
	"log"
	"net/http"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/app"
)

func (webapp *WebApp) tree() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := webapp.Store.ListRecords(r.Context(), parseFilter(r))
		if err != nil {
			log.Printf("Unable to list inventory for tree: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		writeJSON(w, http.StatusOK, app.BuildTree(records))
	}
}
