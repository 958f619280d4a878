package metrics

import (
	"runtime"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// System metrics
	SystemMemoryUsage = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_memory_bytes",
		Help: "Current system memory usage",
	})

	SystemGoroutines = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "system_goroutines",
		Help: "Number of goroutines",
	})

	// Graph metrics
	GraphNodeCount = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "remedy_graph_nodes_total",
		Help: "Number of remedies in the knowledge graph",
	})

	GraphEdgeCount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "remedy_graph_edges_total",
			Help: "Number of edges in the knowledge graph",
		},
		[]string{"edge_type"},
	)

	// Recommendation metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Recommendation requests served",
		},
		[]string{"method", "status"},
	)

	// Knowledge source metrics
	SourceProcessingErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_processing_errors_total",
			Help: "Knowledge source processing failures",
		},
		[]string{"source_type", "error_type"},
	)

	KnowledgeBaseRebuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "knowledge_base_rebuilds_total",
		Help: "Completed knowledge base rebuilds",
	})
)

// UpdateSystemMetrics updates system-level metrics
func UpdateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	SystemMemoryUsage.Set(float64(m.Alloc))
	SystemGoroutines.Set(float64(runtime.NumGoroutine()))
}
