package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/qdrant/go-client/qdrant"
	"github.com/sirupsen/logrus"

	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/graph/metrics"
	"github.com/bloomlab/remedygraph/pkg/graph/storage"
	"github.com/bloomlab/remedygraph/pkg/recommend"
	"github.com/bloomlab/remedygraph/pkg/remedy"
	"github.com/bloomlab/remedygraph/pkg/source"
	"github.com/bloomlab/remedygraph/pkg/store"
	"github.com/bloomlab/remedygraph/server"
	"github.com/bloomlab/remedygraph/services"
)

func main() {
	envFile := flag.String("env", ".env", "Path to environment file")
	addr := flag.String("addr", ":8000", "Address for the API server to listen on")
	dbPath := flag.String("db", "remedygraph.db", "Path to the SQLite database")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(*logLevel); err == nil {
		logger.SetLevel(level)
	}

	if err := godotenv.Load(*envFile); err != nil {
		logger.WithError(err).WithField("file", *envFile).Warn("env file not loaded")
	}

	db, err := store.Open(*dbPath)
	if err != nil {
		logger.WithError(err).Fatal("opening database")
	}

	embedder := buildEmbedder(logger)
	index := buildIndex(logger, embedder)

	remedyGraph := graph.Build(remedy.All())
	nodes, edges := remedyGraph.Size()
	metrics.GraphNodeCount.Set(float64(nodes))
	logger.WithFields(logrus.Fields{"nodes": nodes, "edges": edges}).Info("knowledge graph built")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := index.Rebuild(ctx, remedy.All()); err != nil {
		logger.WithError(err).Fatal("building vector index")
	}
	cancel()

	if uri := os.Getenv("NEO4J_URI"); uri != "" {
		go syncNeo4j(logger, remedyGraph, uri)
	}

	var analyzer recommend.SymptomAnalyzer
	if client := services.DefaultOpenAIClient(); client != nil {
		analyzer = services.NewLLMSymptomAnalyzer(client, os.Getenv("OPENAI_CHAT_MODEL"))
	}

	engine := recommend.NewEngine(remedy.All(), index, recommend.NewGraphScorer(remedy.All(), remedyGraph), analyzer, logger)

	srv := &http.Server{
		Addr: *addr,
		Handler: server.New(server.Config{
			Logger:   logger,
			Engine:   engine,
			Store:    db,
			Graph:    remedyGraph,
			Index:    index,
			Embedder: embedder,
			Fetcher:  source.NewFetcher(),
		}).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithField("addr", *addr).Info("starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.WithField("signal", sig.String()).Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("shutdown error")
	}
	logger.Info("server shutdown complete")
}

// buildEmbedder returns the OpenAI embedder when an API key is configured
// and falls back to the deterministic feature-hashing embedder otherwise.
func buildEmbedder(logger *logrus.Logger) recommend.Embedder {
	if client := services.DefaultOpenAIClient(); client != nil {
		embedder, err := recommend.NewOpenAIEmbedder(client, os.Getenv("OPENAI_EMBEDDING_MODEL"))
		if err != nil {
			logger.WithError(err).Fatal("configuring embedding model")
		}
		logger.WithField("model", embedder.ModelName()).Info("using OpenAI embeddings")
		return embedder
	}
	logger.Info("OPENAI_API_KEY not set, using feature-hashing embeddings")
	return recommend.NewHashingEmbedder(0)
}

// buildIndex returns a Qdrant-backed index when QDRANT_HOST is configured,
// otherwise the in-memory cosine index.
func buildIndex(logger *logrus.Logger, embedder recommend.Embedder) recommend.Index {
	host := os.Getenv("QDRANT_HOST")
	if host == "" {
		logger.Info("QDRANT_HOST not set, using in-memory vector index")
		return recommend.NewMemoryIndex(embedder)
	}

	port := 6334
	if raw := os.Getenv("QDRANT_PORT"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil {
			port = p
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: os.Getenv("QDRANT_API_KEY"),
		UseTLS: os.Getenv("QDRANT_USE_TLS") == "true",
	})
	if err != nil {
		logger.WithError(err).Fatal("connecting to Qdrant")
	}

	collection := os.Getenv("QDRANT_COLLECTION")
	if collection == "" {
		collection = "remedies"
	}
	logger.WithFields(logrus.Fields{"host": host, "collection": collection}).Info("using Qdrant vector index")
	return recommend.NewQdrantIndex(client, collection, embedder)
}

// syncNeo4j mirrors the knowledge graph into Neo4j. Failures are logged
// and do not block serving.
func syncNeo4j(logger *logrus.Logger, g *graph.RemedyGraph, uri string) {
	neo, err := storage.NewNeo4jStorage(uri, os.Getenv("NEO4J_USERNAME"), os.Getenv("NEO4J_PASSWORD"))
	if err != nil {
		logger.WithError(err).Warn("neo4j storage unavailable")
		return
	}
	defer neo.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	catalog := remedy.All()
	remedies := make([]remedy.Remedy, 0, len(catalog))
	for _, r := range catalog {
		remedies = append(remedies, r)
	}
	if err := neo.Sync(ctx, remedies, g.Relations()); err != nil {
		logger.WithError(err).Warn("neo4j sync failed")
		return
	}
	logger.Info("knowledge graph mirrored to neo4j")
}
