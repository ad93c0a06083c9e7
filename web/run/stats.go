package webapp

import (
	"log"
	"net/http"
)

func (webapp *WebApp) stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := webapp.Store.Stats(r.Context())
		if err != nil {
			log.Printf("Unable to compute stats: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
