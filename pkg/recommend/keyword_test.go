package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/remedy"
)

func scorerFixture() (*GraphScorer, map[string]remedy.Remedy) {
	catalog := map[string]remedy.Remedy{
		"mimulus": {
			ID:             "mimulus",
			Name:           "Mimulus",
			Symptoms:       []string{"fear of known things", "shyness"},
			EmotionalState: "timid fearful",
			RemedyFor:      "everyday fears with a known cause",
			Category:       remedy.CategoryFear,
			Combinations:   []string{"aspen"},
		},
		"aspen": {
			ID:             "aspen",
			Name:           "Aspen",
			Symptoms:       []string{"vague unexplained fears"},
			EmotionalState: "anxious apprehensive",
			RemedyFor:      "anxiety without a known cause",
			Category:       remedy.CategoryFear,
		},
		"willow": {
			ID:             "willow",
			Name:           "Willow",
			Symptoms:       []string{"resentment", "bitterness"},
			EmotionalState: "resentful",
			RemedyFor:      "self-pity and blame",
			Category:       remedy.CategoryDespondency,
		},
	}
	return NewGraphScorer(catalog, graph.Build(catalog)), catalog
}

func TestScoreWeightsFields(t *testing.T) {
	scorer, _ := scorerFixture()

	scores := scorer.Score("timid")
	// "timid" appears only in mimulus's emotional state.
	assert.Equal(t, emotionalStateWeight, scores["mimulus"])
	assert.Equal(t, 0.0, scores["aspen"])

	scores = scorer.Score("shyness")
	assert.Equal(t, symptomsWeight, scores["mimulus"])

	scores = scorer.Score("blame")
	assert.Equal(t, remedyForWeight, scores["willow"])
}

func TestScoreIsCaseAndPunctuationInsensitive(t *testing.T) {
	scorer, _ := scorerFixture()

	scores := scorer.Score("Resentment, bitterness!")
	assert.Equal(t, 2*symptomsWeight, scores["willow"])
}

func TestTopRanksAndAnnotates(t *testing.T) {
	scorer, _ := scorerFixture()

	matches := scorer.Top("timid fearful shyness", 5)
	require.NotEmpty(t, matches)
	assert.Equal(t, "mimulus", matches[0].RemedyID)

	// Neighbors come from the knowledge graph, as display names.
	assert.Contains(t, matches[0].ConnectedRemedies, "Aspen")

	// Zero-relevance remedies never appear.
	for _, m := range matches {
		assert.Greater(t, m.Relevance, 0.0)
		assert.NotEqual(t, "willow", m.RemedyID)
	}
}

func TestTopHonorsLimit(t *testing.T) {
	scorer, _ := scorerFixture()

	// "known" hits mimulus and aspen.
	matches := scorer.Top("known", 1)
	assert.Len(t, matches, 1)
}

func TestTopNoMatches(t *testing.T) {
	scorer, _ := scorerFixture()
	assert.Empty(t, scorer.Top("completely unrelated words", 5))
}
