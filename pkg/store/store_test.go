package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return s
}

func TestSaveAndListSelections(t *testing.T) {
	s := openTestStore(t)

	sel := &RemedySelection{
		UserID:   "user-1",
		Symptoms: "fear of known things",
		NLPMode:  true,
	}
	require.NoError(t, sel.SetRecommendations(map[string]string{"remedy": "mimulus"}))
	require.NoError(t, s.SaveSelection(sel))
	assert.NotEmpty(t, sel.ID)
	assert.False(t, sel.Timestamp.IsZero())

	require.NoError(t, s.SaveSelection(&RemedySelection{UserID: "user-1", Symptoms: "anxiety"}))
	require.NoError(t, s.SaveSelection(&RemedySelection{UserID: "user-2", Symptoms: "resentment"}))

	selections, err := s.ListSelections("user-1", 0)
	require.NoError(t, err)
	assert.Len(t, selections, 2)
	for _, got := range selections {
		assert.Equal(t, "user-1", got.UserID)
	}
}

func TestGetSelection(t *testing.T) {
	s := openTestStore(t)

	sel := &RemedySelection{UserID: "user-1", Symptoms: "fear"}
	require.NoError(t, s.SaveSelection(sel))

	got, err := s.GetSelection(sel.ID)
	require.NoError(t, err)
	assert.Equal(t, "fear", got.Symptoms)

	_, err = s.GetSelection("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSelection(t *testing.T) {
	s := openTestStore(t)

	sel := &RemedySelection{UserID: "user-1", Symptoms: "fear"}
	require.NoError(t, s.SaveSelection(sel))

	require.NoError(t, s.UpdateSelection(sel.ID, "anxiety", `{"remedy":"aspen"}`))

	got, err := s.GetSelection(sel.ID)
	require.NoError(t, err)
	assert.Equal(t, "anxiety", got.Symptoms)
	assert.JSONEq(t, `{"remedy":"aspen"}`, string(got.RecommendationsJSON()))

	assert.ErrorIs(t, s.UpdateSelection("missing", "x", "{}"), ErrNotFound)
}

func TestRecommendationsRoundTrip(t *testing.T) {
	sel := &RemedySelection{}
	require.NoError(t, sel.SetRecommendations(map[string]interface{}{
		"vector_recommendation": map[string]string{"remedy_id": "mimulus"},
	}))

	raw := sel.RecommendationsJSON()
	assert.Contains(t, string(raw), "mimulus")

	empty := &RemedySelection{}
	assert.Equal(t, "null", string(empty.RecommendationsJSON()))
}

func TestKnowledgeSources(t *testing.T) {
	s := openTestStore(t)

	src := &KnowledgeSource{SourceType: "text", Content: "remedies for fear"}
	require.NoError(t, s.SaveSource(src))
	assert.NotEmpty(t, src.ID)

	require.NoError(t, s.SaveSource(&KnowledgeSource{SourceType: "web", SourceURL: "https://example.com"}))

	sources, err := s.ListSources(0)
	require.NoError(t, err)
	assert.Len(t, sources, 2)

	unprocessed, err := s.UnprocessedSources(0)
	require.NoError(t, err)
	assert.Len(t, unprocessed, 2)

	require.NoError(t, s.MarkSourceProcessed(src.ID))

	unprocessed, err = s.UnprocessedSources(0)
	require.NoError(t, err)
	assert.Len(t, unprocessed, 1)

	assert.ErrorIs(t, s.MarkSourceProcessed("missing"), ErrNotFound)
}
