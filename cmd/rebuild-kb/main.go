// Command rebuild-kb rebuilds the remedy knowledge base offline: it runs
// every stored unprocessed knowledge source through the document pipeline,
// regenerates the remedy graph, and writes the graph JSON artifact plus an
// optional interactive HTML visualization.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/graph/storage"
	"github.com/bloomlab/remedygraph/pkg/remedy"
	"github.com/bloomlab/remedygraph/pkg/source"
	"github.com/bloomlab/remedygraph/pkg/store"
	"github.com/bloomlab/remedygraph/pkg/viz"
)

var (
	dbPath     = flag.String("db", "remedygraph.db", "Path to the SQLite database")
	outputFile = flag.String("output", "knowledge_graph.json", "Output file path for the knowledge graph")
	visualize  = flag.Bool("visualize", false, "Generate an HTML visualization of the knowledge graph")
	vizOutput  = flag.String("viz-output", "knowledge_graph.html", "Output file for the visualization")
	logLevel   = flag.String("log-level", "info", "Logging level (debug, info, warn, error)")
)

func main() {
	flag.Parse()

	logger := logrus.New()
	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		logger.Fatalf("Invalid log level: %v", err)
	}
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	db, err := store.Open(*dbPath)
	if err != nil {
		logger.Fatalf("Failed to open database: %v", err)
	}

	ctx := context.Background()

	sources, err := db.UnprocessedSources(0)
	if err != nil {
		logger.Fatalf("Failed to load knowledge sources: %v", err)
	}
	logger.Infof("Processing %d unprocessed knowledge sources...", len(sources))

	pipeline := source.NewPipeline()
	pipeline.AddProcessor(source.NewNLPProcessor())

	documents := make([]*source.Document, 0, len(sources))
	for _, src := range sources {
		documents = append(documents, &source.Document{
			ID:      src.ID,
			Content: src.Content,
			Metadata: map[string]interface{}{
				"source_type": src.SourceType,
				"source_url":  src.SourceURL,
			},
		})
	}

	if len(documents) > 0 {
		if err := pipeline.BatchProcess(ctx, documents); err != nil {
			logger.Errorf("Source processing incomplete: %v", err)
		}
		for _, doc := range documents {
			if err := db.MarkSourceProcessed(doc.ID); err != nil {
				logger.Errorf("Failed to mark source %s processed: %v", doc.ID, err)
			}
		}
	}

	remedyGraph := graph.Build(remedy.All())
	snap := remedyGraph.Snapshot()

	graphStore := storage.NewJSONGraphStore(*outputFile)
	if err := graphStore.StoreGraph(ctx, snap); err != nil {
		logger.Fatalf("Failed to store knowledge graph: %v", err)
	}

	logger.Infof("Knowledge graph generated with %d nodes and %d edges",
		snap.Statistics.TotalNodes, snap.Statistics.TotalEdges)
	logger.Infof("Knowledge graph saved to %s", *outputFile)

	if *visualize {
		view := viz.NewGraphView("Remedy Knowledge Graph", "knowledge")
		view.SetSnapshot(snap)

		f, err := os.Create(*vizOutput)
		if err != nil {
			logger.Fatalf("Failed to create visualization file: %v", err)
		}
		defer f.Close()

		if err := viz.RenderGraphPage(f, view); err != nil {
			logger.Errorf("Failed to render visualization: %v", err)
		} else {
			logger.Infof("Visualization saved to %s", *vizOutput)
		}
	}
}
