package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-resource-client/internal/utils"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withFaults)
	router.Use(withGZip)

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", h.listPosts)
		r.Post("/", h.createPost)
		r.Get("/{id}", h.getPost)
	})

	router.Route("/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Get("/{id}", h.getUser)
	})

	router.Get("/version", h.getServerVersion)

	router.Route("/__admin/faults", func(r chi.Router) {
		r.Get("/", h.listFaults)
		r.Post("/", h.setFault)
		r.Delete("/", h.deleteFaults)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}

// notFound answers unknown routes and unsupported methods alike with 404 and
// an empty object, hiding which routes exist.
func notFound(w http.ResponseWriter, _ *http.Request) {
	_, _ = utils.WriteJSON(w, struct{}{}, http.StatusNotFound)
}
