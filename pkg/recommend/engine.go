package recommend

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bloomlab/remedygraph/pkg/graph/metrics"
	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// VectorRecommendation is the vector-similarity result returned to clients.
type VectorRecommendation struct {
	RemedyID        string          `json:"remedy_id"`
	RemedyName      string          `json:"remedy_name"`
	SimilarityScore float64         `json:"similarity_score"`
	Symptoms        []string        `json:"symptoms"`
	RemedyFor       string          `json:"remedy_for"`
	Category        remedy.Category `json:"category"`
	Method          string          `json:"method"`
}

// GraphRecommendation is the knowledge-graph result returned to clients.
type GraphRecommendation struct {
	RemedyID          string          `json:"remedy_id"`
	RemedyName        string          `json:"remedy_name"`
	RelevanceScore    float64         `json:"relevance_score"`
	Symptoms          []string        `json:"symptoms"`
	RemedyFor         string          `json:"remedy_for"`
	Category          remedy.Category `json:"category"`
	ConnectedRemedies []string        `json:"connected_remedies"`
	Method            string          `json:"method"`
}

// NLPAnalysis reports what NLP mode made of the free-form input.
type NLPAnalysis struct {
	SentimentPolarity     float64 `json:"sentiment_polarity"`
	SentimentSubjectivity float64 `json:"sentiment_subjectivity"`
	OriginalText          string  `json:"original_text"`
}

// Result carries both recommendation paths side by side.
type Result struct {
	Vector           *VectorRecommendation `json:"vector_recommendation"`
	Graph            *GraphRecommendation  `json:"knowledge_graph_recommendation"`
	SymptomsAnalyzed string                `json:"symptoms_analyzed"`
	NLPMode          bool                  `json:"nlp_mode"`
	NLP              *NLPAnalysis          `json:"nlp_analysis,omitempty"`
}

// Analysis is the output of the optional NLP-mode symptom analyzer.
type Analysis struct {
	ExtractedSymptoms string
	Polarity          float64
	Subjectivity      float64
	OriginalText      string
}

// SymptomAnalyzer rewrites free-form text into symptom keywords before
// matching. Implementations may call out to an LLM.
type SymptomAnalyzer interface {
	Analyze(ctx context.Context, text string) (*Analysis, error)
}

// Engine runs the two recommendation paths over one symptom description.
type Engine struct {
	catalog  map[string]remedy.Remedy
	index    Index
	scorer   *GraphScorer
	analyzer SymptomAnalyzer
	logger   *logrus.Logger
}

// NewEngine wires the engine. analyzer may be nil, in which case NLP mode
// falls back to matching the raw text.
func NewEngine(catalog map[string]remedy.Remedy, index Index, scorer *GraphScorer, analyzer SymptomAnalyzer, logger *logrus.Logger) *Engine {
	if logger == nil {
		logger = logrus.New()
	}
	return &Engine{
		catalog:  catalog,
		index:    index,
		scorer:   scorer,
		analyzer: analyzer,
		logger:   logger,
	}
}

// Recommend runs the vector and knowledge-graph lookups and, when nlpMode
// is set, the symptom analyzer first.
func (e *Engine) Recommend(ctx context.Context, symptoms string, nlpMode bool) (*Result, error) {
	result := &Result{
		SymptomsAnalyzed: symptoms,
		NLPMode:          nlpMode,
	}

	if nlpMode && e.analyzer != nil {
		analysis, err := e.analyzer.Analyze(ctx, symptoms)
		if err != nil {
			// Fall back to the raw text, same as the analyzer being absent.
			e.logger.WithError(err).Warn("Symptom analysis failed, matching raw text")
		} else {
			result.SymptomsAnalyzed = analysis.ExtractedSymptoms
			result.NLP = &NLPAnalysis{
				SentimentPolarity:     analysis.Polarity,
				SentimentSubjectivity: analysis.Subjectivity,
				OriginalText:          analysis.OriginalText,
			}
		}
	}

	matches, err := e.index.Search(ctx, result.SymptomsAnalyzed, 1)
	if err != nil {
		metrics.RecommendationsTotal.WithLabelValues("vector_similarity", "error").Inc()
		return nil, errors.Wrap(err, "vector search")
	}
	if len(matches) > 0 {
		if r, ok := e.catalog[matches[0].RemedyID]; ok {
			result.Vector = &VectorRecommendation{
				RemedyID:        r.ID,
				RemedyName:      r.Name,
				SimilarityScore: matches[0].Score,
				Symptoms:        r.Symptoms,
				RemedyFor:       r.RemedyFor,
				Category:        r.Category,
				Method:          "vector_similarity",
			}
			metrics.RecommendationsTotal.WithLabelValues("vector_similarity", "success").Inc()
		}
	}

	for _, m := range e.scorer.Top(result.SymptomsAnalyzed, 1) {
		r, ok := e.catalog[m.RemedyID]
		if !ok {
			continue
		}
		result.Graph = &GraphRecommendation{
			RemedyID:          r.ID,
			RemedyName:        r.Name,
			RelevanceScore:    m.Relevance,
			Symptoms:          r.Symptoms,
			RemedyFor:         r.RemedyFor,
			Category:          r.Category,
			ConnectedRemedies: m.ConnectedRemedies,
			Method:            "knowledge_graph",
		}
		metrics.RecommendationsTotal.WithLabelValues("knowledge_graph", "success").Inc()
	}

	e.logger.WithFields(logrus.Fields{
		"nlp_mode":   nlpMode,
		"vector_hit": result.Vector != nil,
		"graph_hit":  result.Graph != nil,
	}).Info("Recommendation computed")

	return result, nil
}
