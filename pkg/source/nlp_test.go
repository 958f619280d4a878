package source

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

func TestNLPProcessorExtractsMentions(t *testing.T) {
	p := NewNLPProcessor()

	doc, err := p.Process(context.Background(),
		[]byte("The patient reports terror at night and constant anxiety during the day. There is also deep resentment toward family."),
		map[string]interface{}{"source_type": "text"})
	require.NoError(t, err)

	categories := make(map[remedy.Category]bool)
	labels := make(map[string]bool)
	for _, m := range doc.Mentions {
		categories[m.Category] = true
		labels[m.Label] = true
		assert.Greater(t, m.EndPos, m.StartPos)
	}

	assert.True(t, labels["terror"])
	assert.True(t, labels["anxiety"])
	assert.True(t, labels["resentment"])
	assert.True(t, categories[remedy.CategoryFear])
	assert.True(t, categories[remedy.CategoryDespondency])
}

func TestNLPProcessorSentiment(t *testing.T) {
	p := NewNLPProcessor()

	negative, err := p.Process(context.Background(),
		[]byte("I feel afraid, anxious and hopeless."), nil)
	require.NoError(t, err)
	assert.Negative(t, negative.Sentiment.Polarity)
	assert.Greater(t, negative.Sentiment.Subjectivity, 0.0)

	positive, err := p.Process(context.Background(),
		[]byte("I feel calm, peaceful and hopeful today."), nil)
	require.NoError(t, err)
	assert.Positive(t, positive.Sentiment.Polarity)

	neutral, err := p.Process(context.Background(),
		[]byte("The bottle contains thirty milliliters."), nil)
	require.NoError(t, err)
	assert.Zero(t, neutral.Sentiment.Polarity)
	assert.Zero(t, neutral.Sentiment.Subjectivity)
}

func TestNLPProcessorKeywords(t *testing.T) {
	p := NewNLPProcessor()

	doc, err := p.Process(context.Background(),
		[]byte("Fear dominates the patient. Fear and anxiety appear in every conversation about fear."), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, doc.Keywords)
	assert.LessOrEqual(t, len(doc.Keywords), 10)
	for i := 1; i < len(doc.Keywords); i++ {
		assert.GreaterOrEqual(t, doc.Keywords[i-1].Score, doc.Keywords[i].Score)
	}
}

func TestHTMLProcessorStripsMarkup(t *testing.T) {
	p := NewHTMLProcessor()

	doc, err := p.Process(context.Background(),
		[]byte("<html><body><h1>Remedies</h1><p>Terror and panic respond to Rock Rose.</p></body></html>"), nil)
	require.NoError(t, err)

	assert.NotContains(t, doc.Content, "<p>")
	assert.Contains(t, doc.Content, "Terror and panic")
}
