package recommend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

func TestHashingEmbedderDeterministic(t *testing.T) {
	e := NewHashingEmbedder(0)
	assert.Equal(t, uint64(384), e.Dimensions())
	assert.Equal(t, "feature-hashing", e.ModelName())

	a, err := e.Embed(context.Background(), []string{"fear of known things"})
	require.NoError(t, err)
	b, err := e.Embed(context.Background(), []string{"fear of known things"})
	require.NoError(t, err)

	assert.Equal(t, a, b)
	require.Len(t, a[0], 384)
}

func TestHashingEmbedderNormalized(t *testing.T) {
	e := NewHashingEmbedder(64)

	vecs, err := e.Embed(context.Background(), []string{"anxious apprehensive worry"})
	require.NoError(t, err)

	var norm float64
	for _, v := range vecs[0] {
		norm += float64(v) * float64(v)
	}
	assert.InDelta(t, 1.0, norm, 1e-5)
}

func TestMemoryIndexRanksByOverlap(t *testing.T) {
	catalog := map[string]remedy.Remedy{
		"mimulus": {ID: "mimulus",
			Symptoms:       []string{"fear of known things"},
			EmotionalState: "timid fearful",
			RemedyFor:      "everyday fears"},
		"willow": {ID: "willow",
			Symptoms:       []string{"resentment bitterness"},
			EmotionalState: "resentful",
			RemedyFor:      "self-pity"},
	}

	index := NewMemoryIndex(NewHashingEmbedder(0))
	require.NoError(t, index.Rebuild(context.Background(), catalog))

	matches, err := index.Search(context.Background(), "fear of known things", 2)
	require.NoError(t, err)
	require.Len(t, matches, 2)

	assert.Equal(t, "mimulus", matches[0].RemedyID)
	assert.Greater(t, matches[0].Score, matches[1].Score)
}

func TestMemoryIndexTopK(t *testing.T) {
	index := NewMemoryIndex(NewHashingEmbedder(0))
	require.NoError(t, index.Rebuild(context.Background(), remedy.All()))

	matches, err := index.Search(context.Background(), "sudden panic and terror", 5)
	require.NoError(t, err)
	assert.Len(t, matches, 5)
}

func TestCosineSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, cosineSimilarity([]float64{1, 0}, []float64{2, 0}), 1e-9)
	assert.InDelta(t, 0.0, cosineSimilarity([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float64{1, 0}, []float64{-1, 0}), 1e-9)

	// Zero vectors score zero instead of dividing by zero.
	assert.Equal(t, 0.0, cosineSimilarity([]float64{0, 0}, []float64{1, 1}))
}
