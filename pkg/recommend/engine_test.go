package recommend

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/remedy"
)

type stubAnalyzer struct {
	analysis *Analysis
	err      error
}

func (s *stubAnalyzer) Analyze(ctx context.Context, text string) (*Analysis, error) {
	return s.analysis, s.err
}

func newTestEngine(t *testing.T, analyzer SymptomAnalyzer) *Engine {
	t.Helper()

	catalog := remedy.All()
	index := NewMemoryIndex(NewHashingEmbedder(0))
	require.NoError(t, index.Rebuild(context.Background(), catalog))

	scorer := NewGraphScorer(catalog, graph.Build(catalog))
	return NewEngine(catalog, index, scorer, analyzer, nil)
}

func TestRecommendReturnsBothPaths(t *testing.T) {
	engine := newTestEngine(t, nil)

	result, err := engine.Recommend(context.Background(), "fear of known things, shyness", false)
	require.NoError(t, err)

	require.NotNil(t, result.Vector)
	assert.Equal(t, "vector_similarity", result.Vector.Method)
	assert.NotEmpty(t, result.Vector.RemedyID)

	require.NotNil(t, result.Graph)
	assert.Equal(t, "knowledge_graph", result.Graph.Method)
	assert.Greater(t, result.Graph.RelevanceScore, 0.0)

	assert.Equal(t, "fear of known things, shyness", result.SymptomsAnalyzed)
	assert.False(t, result.NLPMode)
	assert.Nil(t, result.NLP)
}

func TestRecommendNLPModeUsesAnalyzer(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: &Analysis{
		ExtractedSymptoms: "fear anxiety",
		Polarity:          -0.4,
		Subjectivity:      0.7,
		OriginalText:      "I have been so afraid lately",
	}}
	engine := newTestEngine(t, analyzer)

	result, err := engine.Recommend(context.Background(), "I have been so afraid lately", true)
	require.NoError(t, err)

	assert.Equal(t, "fear anxiety", result.SymptomsAnalyzed)
	assert.True(t, result.NLPMode)
	require.NotNil(t, result.NLP)
	assert.Equal(t, -0.4, result.NLP.SentimentPolarity)
	assert.Equal(t, "I have been so afraid lately", result.NLP.OriginalText)
}

func TestRecommendNLPModeFallsBackOnAnalyzerError(t *testing.T) {
	engine := newTestEngine(t, &stubAnalyzer{err: errors.New("llm unavailable")})

	result, err := engine.Recommend(context.Background(), "fear of known things", true)
	require.NoError(t, err)

	assert.Equal(t, "fear of known things", result.SymptomsAnalyzed)
	assert.Nil(t, result.NLP)
	assert.NotNil(t, result.Vector)
}

func TestRecommendNoGraphMatchForUnrelatedText(t *testing.T) {
	engine := newTestEngine(t, nil)

	result, err := engine.Recommend(context.Background(), "zzzz qqqq xxxx", false)
	require.NoError(t, err)

	// The graph path needs word overlap; the vector path always answers.
	assert.Nil(t, result.Graph)
}
