package webapp

import (
	"log"
	"net/http"

	"github.com/CompassHB/Google-Drive-Inventory-Manager/models"
)

type inventoryResponse struct {
	Total int             `json:"total"`
	Items []models.Record `json:"items"`
}

func (webapp *WebApp) inventory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		records, err := webapp.Store.ListRecords(r.Context(), parseFilter(r))
		if err != nil {
			log.Printf("Unable to list inventory: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		if records == nil {
			records = []models.Record{}
		}
		writeJSON(w, http.StatusOK, inventoryResponse{
			Total: len(records),
			Items: records,
		})
	}
}
