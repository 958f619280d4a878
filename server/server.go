// Package server exposes the recommendation engine, selection store and
// admin knowledge-base tooling over HTTP.
package server

import (
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/recommend"
	"github.com/bloomlab/remedygraph/pkg/source"
	"github.com/bloomlab/remedygraph/pkg/store"
	"github.com/bloomlab/remedygraph/pkg/viz"
)

// How many leading embedding coordinates the embeddings snapshot exposes.
const embeddingPreviewLen = 8

// Config carries the wired components the server serves.
type Config struct {
	Logger   *logrus.Logger
	Engine   *recommend.Engine
	Store    *store.Store
	Graph    *graph.RemedyGraph
	Index    recommend.Index
	Embedder recommend.Embedder
	Fetcher  *source.Fetcher
}

// Server is the HTTP layer. All handlers hang off it.
type Server struct {
	logger   *logrus.Logger
	validate *validator.Validate
	engine   *recommend.Engine
	store    *store.Store
	graph    *graph.RemedyGraph
	index    recommend.Index
	embedder recommend.Embedder
	fetcher  *source.Fetcher

	nlp  *source.NLPProcessor
	pdf  *source.PDFProcessor
	html *source.HTMLProcessor

	// Embedding snapshot cache, invalidated by knowledge-base rebuilds.
	embedMu   sync.Mutex
	embedSnap *viz.EmbeddingSnapshot
}

// New builds a Server from wired components.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}
	return &Server{
		logger:   logger,
		validate: validator.New(),
		engine:   cfg.Engine,
		store:    cfg.Store,
		graph:    cfg.Graph,
		index:    cfg.Index,
		embedder: cfg.Embedder,
		fetcher:  cfg.Fetcher,
		nlp:      source.NewNLPProcessor(),
		pdf:      source.NewPDFProcessor(),
		html:     source.NewHTMLProcessor(),
	}
}

// Router configures all routes and middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(metricsMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	r.Get("/healthz", s.handleHealthz)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/recommendations", s.handleRecommend)

		r.Route("/remedy-selections", func(r chi.Router) {
			r.Post("/", s.handleCreateSelection)
			r.Get("/{userID}", s.handleListSelections)
			r.Put("/{selectionID}", s.handleUpdateSelection)
		})

		r.Route("/remedies", func(r chi.Router) {
			r.Get("/", s.handleListRemedies)
			r.Get("/{remedyID}", s.handleRemedyDetail)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/knowledge-sources", s.handleCreateSource)
			r.Get("/knowledge-sources", s.handleListSources)
			r.Post("/rebuild-knowledge-base", s.handleRebuild)

			r.Route("/visualization", func(r chi.Router) {
				r.Get("/graph", s.handleGraphSnapshot)
				r.Get("/graph/view", s.handleGraphPage)
				r.Get("/embeddings", s.handleEmbeddingSnapshot)
				r.Get("/embeddings/view", s.handleEmbeddingPage)
			})
		})
	})

	return r
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
