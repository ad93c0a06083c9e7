package webapp

import (
	"log"
	"net/http"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/app"
)

// export streams the filtered inventory back out as CSV, raw plus derived
// columns.
func (webapp *WebApp) export() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := webapp.Store.ListRecords(r.Context(), parseFilter(r))
		if err != nil {
			log.Printf("Unable to list inventory for export: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="drive_inventory.csv"`)

		if err := app.WriteCSV(w, records); err != nil {
			log.Printf("Error writing export: %v", err)
		}
	}
}
