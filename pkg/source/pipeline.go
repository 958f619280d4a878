package source

import (
	"context"
	"fmt"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

var (
	pipelineProcessingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "pipeline_processing_duration_seconds",
			Help: "Time spent processing knowledge sources in pipeline",
		},
		[]string{"status"},
	)

	documentProcessedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pipeline_documents_processed_total",
			Help: "Total number of knowledge sources processed",
		},
		[]string{"status"},
	)
)

func init() {
	prometheus.MustRegister(pipelineProcessingDuration)
	prometheus.MustRegister(documentProcessedTotal)
}

// Pipeline runs knowledge sources through a chain of processors.
type Pipeline struct {
	processors []Processor
	mutex      sync.RWMutex
	logger     *logrus.Logger
	batchSize  int
}

// NewPipeline creates a new source processing pipeline
func NewPipeline() *Pipeline {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &Pipeline{
		processors: make([]Processor, 0),
		batchSize:  10,
		logger:     logger,
	}
}

// AddProcessor adds a new processor to the pipeline
func (p *Pipeline) AddProcessor(processor Processor) {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.processors = append(p.processors, processor)
}

// BatchProcess processes multiple documents concurrently in fixed-size
// batches.
func (p *Pipeline) BatchProcess(ctx context.Context, docs []*Document) error {
	p.logger.WithField("document_count", len(docs)).Info("Starting batch processing")

	for i := 0; i < len(docs); i += p.batchSize {
		end := i + p.batchSize
		if end > len(docs) {
			end = len(docs)
		}

		batch := docs[i:end]
		errs := make(chan error, len(batch))
		var wg sync.WaitGroup

		for _, doc := range batch {
			wg.Add(1)
			go func(d *Document) {
				defer wg.Done()

				timer := prometheus.NewTimer(pipelineProcessingDuration.WithLabelValues("processing"))
				err := p.Process(ctx, d)
				timer.ObserveDuration()

				if err != nil {
					p.logger.WithError(err).WithField("doc_id", d.ID).Error("Failed to process document")
					documentProcessedTotal.WithLabelValues("error").Inc()
					errs <- err
					return
				}

				documentProcessedTotal.WithLabelValues("success").Inc()
			}(doc)
		}

		wg.Wait()
		close(errs)

		for err := range errs {
			if err != nil {
				return fmt.Errorf("batch processing failed: %v", err)
			}
		}
	}

	p.logger.Info("Batch processing completed successfully")
	return nil
}

// Process runs the document through all processors in the pipeline
func (p *Pipeline) Process(ctx context.Context, doc *Document) error {
	if doc == nil {
		return fmt.Errorf("cannot process nil document")
	}

	p.logger.WithField("doc_id", doc.ID).Info("Processing document")

	p.mutex.RLock()
	processors := make([]Processor, len(p.processors))
	copy(processors, p.processors)
	p.mutex.RUnlock()

	if len(processors) == 0 {
		return fmt.Errorf("no processors configured in pipeline")
	}

	timer := prometheus.NewTimer(pipelineProcessingDuration.WithLabelValues("single"))
	defer timer.ObserveDuration()

	var processedDoc *Document
	var err error

	for i, processor := range processors {
		if i == 0 {
			processedDoc, err = processor.Process(ctx, []byte(doc.Content), doc.Metadata)
		} else {
			processedDoc, err = processor.Process(ctx, []byte(processedDoc.Content), processedDoc.Metadata)
		}

		if err != nil {
			return fmt.Errorf("processor %d failed: %v", i, err)
		}
	}

	processedDoc.ID = doc.ID
	*doc = *processedDoc

	p.logger.WithField("doc_id", doc.ID).Info("Document processing completed")
	return nil
}
