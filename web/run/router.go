package webapp

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/cors"
)

func router(webapp *WebApp) http.Handler {
	r := chi.NewRouter()

	r.Get("/api/inventory", webapp.inventory())
	r.Get("/api/suggestions", webapp.suggestions())
	r.Get("/api/stats", webapp.stats())
	r.Get("/api/tree", webapp.tree())
	r.Get("/api/export", webapp.export())

	r.Get("/api/marks", webapp.listMarks())
	r.Post("/api/marks", webapp.addMarks())
	r.Delete("/api/marks", webapp.removeMarks())

	r.NotFound(webapp.notFoundHandler())

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowedHeaders: []string{"Content-Type"},
	})

	return c.Handler(r)
}
