package webapp

import (
	"encoding/json"
	"log"
	"net/http"
)

type marksRequest struct {
	Names []string `json:"names"`
}

type marksResponse struct {
	Marked []string `json:"marked"`
}

func (webapp *WebApp) listMarks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		marks, err := webapp.Store.ListMarks(r.Context())
		if err != nil {
			log.Printf("Unable to list marks: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}
		if marks == nil {
			marks = []string{}
		}
		writeJSON(w, http.StatusOK, marksResponse{Marked: marks})
	}
}

// addMarks flags item names for archiving, e.g. a whole suggestion group at
// once.
func (webapp *WebApp) addMarks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req marksRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			webapp.renderError(w, http.StatusBadRequest, "Request body must be JSON with a names array.")
			return
		}
		if len(req.Names) == 0 {
			webapp.renderError(w, http.StatusBadRequest, "At least one name is required.")
			return
		}

		if err := webapp.Store.MarkAll(r.Context(), req.Names); err != nil {
			log.Printf("Unable to mark items: %v", err)
			webapp.renderError(w, http.StatusInternalServerError, "")
			return
		}

		webapp.listMarks()(w, r)
	}
}

// removeMarks unmarks the named items, or everything with ?all=1.
func (webapp *WebApp) removeMarks() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("all") == "1" {
			if err := webapp.Store.ClearMarks(r.Context()); err != nil {
				log.Printf("Unable to clear marks: %v", err)
				webapp.renderError(w, http.StatusInternalServerError, "")
				return
			}
			writeJSON(w, http.StatusOK, marksResponse{Marked: []string{}})
			return
		}

		var req marksRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Names) == 0 {
			webapp.renderError(w, http.StatusBadRequest, "Request body must be JSON with a names array.")
			return
		}

		for _, name := range req.Names {
			if err := webapp.Store.Unmark(r.Context(), name); err != nil {
				log.Printf("Unable to unmark %s: %v", name, err)
				webapp.renderError(w, http.StatusInternalServerError, "")
				return
			}
		}

		webapp.listMarks()(w, r)
	}
}
