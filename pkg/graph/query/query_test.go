package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/remedy"
)

func testSnapshot() *graph.Snapshot {
	return &graph.Snapshot{
		Entities: []graph.Entity{
			{ID: "aspen", Category: remedy.CategoryFear, Connections: 1},
			{ID: "mimulus", Category: remedy.CategoryFear, Connections: 2},
			{ID: "willow", Category: remedy.CategoryDespondency, Connections: 1},
		},
		Relations: []graph.Relation{
			{ID: "aspen-mimulus-combination", Source: "aspen", Target: "mimulus", Type: graph.RelationCombination, Weight: 0.8},
			{ID: "mimulus-willow-ordinary", Source: "mimulus", Target: "willow", Type: graph.RelationOrdinary, Weight: 0.6},
		},
		Statistics: graph.Statistics{TotalNodes: 3, TotalEdges: 2, CategoriesCount: 2},
	}
}

func TestApplyEmptyFilterPassesThrough(t *testing.T) {
	snap := testSnapshot()
	assert.Same(t, snap, Apply(snap, Filter{}))
}

func TestApplyCategoryFilter(t *testing.T) {
	filtered := Apply(testSnapshot(), Filter{Category: remedy.CategoryFear})

	require.Len(t, filtered.Entities, 2)
	// Only relations with both endpoints surviving stay.
	require.Len(t, filtered.Relations, 1)
	assert.Equal(t, "aspen-mimulus-combination", filtered.Relations[0].ID)

	assert.Equal(t, 2, filtered.Statistics.TotalNodes)
	assert.Equal(t, 1, filtered.Statistics.TotalEdges)
	assert.Equal(t, 1, filtered.Statistics.CategoriesCount)
}

func TestApplyTypeAndWeightFilters(t *testing.T) {
	byType := Apply(testSnapshot(), Filter{Type: graph.RelationCombination})
	require.Len(t, byType.Relations, 1)
	assert.Equal(t, graph.RelationCombination, byType.Relations[0].Type)

	byWeight := Apply(testSnapshot(), Filter{MinWeight: 0.7})
	require.Len(t, byWeight.Relations, 1)
	assert.Equal(t, 0.8, byWeight.Relations[0].Weight)
}

func TestApplyNilSnapshot(t *testing.T) {
	assert.Nil(t, Apply(nil, Filter{Category: remedy.CategoryFear}))
}
