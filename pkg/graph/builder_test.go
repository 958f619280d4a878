package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

func TestBuildCombinationEdges(t *testing.T) {
	catalog := map[string]remedy.Remedy{
		"mimulus": {ID: "mimulus", Name: "Mimulus", Category: remedy.CategoryFear,
			Combinations: []string{"aspen", "rock_rose"}},
		"aspen": {ID: "aspen", Name: "Aspen", Category: remedy.CategoryDespondency},
	}

	g := Build(catalog)

	nodes, edges := g.Size()
	assert.Equal(t, 2, nodes)
	// rock_rose is not in the catalog and gets skipped.
	assert.Equal(t, 1, edges)

	rels := g.Relations()
	require.Len(t, rels, 1)
	assert.Equal(t, RelationCombination, rels[0].Type)
	assert.Equal(t, 0.8, rels[0].Weight)
}

func TestBuildCategoryEdges(t *testing.T) {
	catalog := map[string]remedy.Remedy{
		"mimulus": {ID: "mimulus", Category: remedy.CategoryFear},
		"aspen":   {ID: "aspen", Category: remedy.CategoryFear},
		"willow":  {ID: "willow", Category: remedy.CategoryDespondency},
	}

	g := Build(catalog)

	rels := g.Relations()
	require.Len(t, rels, 1)
	assert.Equal(t, RelationOrdinary, rels[0].Type)
	assert.Equal(t, 0.6, rels[0].Weight)
	assert.True(t, rels[0].Touches("mimulus"))
	assert.True(t, rels[0].Touches("aspen"))
}

func TestBuildCombinationWinsOverCategory(t *testing.T) {
	// Same category AND a declared combination; only the combination edge
	// survives, regardless of which remedy declares it.
	catalog := map[string]remedy.Remedy{
		"mimulus": {ID: "mimulus", Category: remedy.CategoryFear},
		"aspen": {ID: "aspen", Category: remedy.CategoryFear,
			Combinations: []string{"mimulus"}},
	}

	g := Build(catalog)

	rels := g.Relations()
	require.Len(t, rels, 1)
	assert.Equal(t, RelationCombination, rels[0].Type)
	assert.Equal(t, 0.8, rels[0].Weight)
}

func TestBuildFullCatalog(t *testing.T) {
	g := Build(remedy.All())

	nodes, edges := g.Size()
	assert.Equal(t, remedy.Count(), nodes)
	assert.Greater(t, edges, 0)

	snap := g.Snapshot()
	assert.Equal(t, nodes, snap.Statistics.TotalNodes)
	assert.Equal(t, edges, snap.Statistics.TotalEdges)
	assert.Equal(t, len(remedy.Categories), snap.Statistics.CategoriesCount)

	// Every relation references catalog remedies.
	for _, rel := range snap.Relations {
		_, ok := remedy.Get(rel.Source)
		require.True(t, ok, "unknown source %s", rel.Source)
		_, ok = remedy.Get(rel.Target)
		require.True(t, ok, "unknown target %s", rel.Target)
	}
}
