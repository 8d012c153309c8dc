package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ragquery/internal/handlers"
	"ragquery/internal/rag"
	"ragquery/internal/vectorstore"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	Engine         rag.Engine
	Pipeline       handlers.Ingestor
	VectorStore    vectorstore.VectorStore
	CollectionName string
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(LoggerMiddleware)
	r.Use(CORS)

	r.Method(http.MethodGet, "/", handlers.NewUIHandler())
	r.Method(http.MethodPost, "/index", handlers.NewIndexHandler(deps.Pipeline))
	r.Method(http.MethodPost, "/index_file", handlers.NewIndexFileHandler(deps.Pipeline))
	r.Method(http.MethodPost, "/index_archive", handlers.NewIndexArchiveHandler(deps.Pipeline))
	r.Method(http.MethodPost, "/query", handlers.NewQueryHandler(deps.Engine))

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", handlers.NewHealthHandler(deps.VectorStore, deps.CollectionName))
	})

	return r
}
