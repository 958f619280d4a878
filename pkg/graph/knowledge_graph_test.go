package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

func testRemedy(id string, category remedy.Category, symptoms ...string) remedy.Remedy {
	return remedy.Remedy{
		ID:       id,
		Name:     id,
		Category: category,
		Symptoms: symptoms,
	}
}

func TestAddRelationRequiresEndpoints(t *testing.T) {
	g := NewRemedyGraph()
	g.AddRemedy(testRemedy("mimulus", remedy.CategoryFear, "fear of known things"))

	err := g.AddRelation("mimulus", "aspen", RelationCombination, 0.8)
	assert.Error(t, err)

	g.AddRemedy(testRemedy("aspen", remedy.CategoryFear, "vague fears"))
	err = g.AddRelation("mimulus", "aspen", RelationCombination, 0.8)
	require.NoError(t, err)

	nodes, edges := g.Size()
	assert.Equal(t, 2, nodes)
	assert.Equal(t, 1, edges)
}

func TestAddRelationIsUndirected(t *testing.T) {
	g := NewRemedyGraph()
	g.AddRemedy(testRemedy("mimulus", remedy.CategoryFear))
	g.AddRemedy(testRemedy("aspen", remedy.CategoryFear))

	require.NoError(t, g.AddRelation("mimulus", "aspen", RelationCombination, 0.8))
	require.NoError(t, g.AddRelation("aspen", "mimulus", RelationCombination, 0.8))

	_, edges := g.Size()
	assert.Equal(t, 1, edges)
}

func TestNeighbors(t *testing.T) {
	g := NewRemedyGraph()
	g.AddRemedy(testRemedy("mimulus", remedy.CategoryFear))
	g.AddRemedy(testRemedy("aspen", remedy.CategoryFear))
	g.AddRemedy(testRemedy("willow", remedy.CategoryDespondency))

	require.NoError(t, g.AddRelation("mimulus", "aspen", RelationCombination, 0.8))
	require.NoError(t, g.AddRelation("willow", "mimulus", RelationOrdinary, 0.6))

	assert.Equal(t, []string{"aspen", "willow"}, g.Neighbors("mimulus"))
	assert.Equal(t, []string{"mimulus"}, g.Neighbors("aspen"))
	assert.Empty(t, g.Neighbors("unknown"))
	assert.Equal(t, 2, g.Degree("mimulus"))
}

func TestSnapshot(t *testing.T) {
	g := NewRemedyGraph()
	g.AddRemedy(testRemedy("mimulus", remedy.CategoryFear, "a", "b", "c"))
	g.AddRemedy(testRemedy("aspen", remedy.CategoryFear, "a"))
	g.AddRemedy(testRemedy("willow", remedy.CategoryDespondency))

	require.NoError(t, g.AddRelation("mimulus", "aspen", RelationCombination, 0.8))

	snap := g.Snapshot()

	require.Len(t, snap.Entities, 3)
	assert.Equal(t, 3, snap.Statistics.TotalNodes)
	assert.Equal(t, 1, snap.Statistics.TotalEdges)
	assert.Equal(t, 2, snap.Statistics.CategoriesCount)

	// Entities sorted by ID; connection counts are node degrees.
	assert.Equal(t, "aspen", snap.Entities[0].ID)
	assert.Equal(t, 1, snap.Entities[0].Connections)
	assert.Equal(t, "mimulus", snap.Entities[1].ID)
	assert.Equal(t, 3, snap.Entities[1].SymptomsCount)
	assert.Equal(t, "willow", snap.Entities[2].ID)
	assert.Equal(t, 0, snap.Entities[2].Connections)

	// Relations carry canonical IDs with the smaller endpoint first.
	require.Len(t, snap.Relations, 1)
	assert.Equal(t, "aspen-mimulus-combination", snap.Relations[0].ID)
}

func TestReplace(t *testing.T) {
	g := NewRemedyGraph()
	g.AddRemedy(testRemedy("mimulus", remedy.CategoryFear))

	other := NewRemedyGraph()
	other.AddRemedy(testRemedy("aspen", remedy.CategoryFear))
	other.AddRemedy(testRemedy("willow", remedy.CategoryDespondency))

	g.Replace(other)

	nodes, _ := g.Size()
	assert.Equal(t, 2, nodes)
	_, ok := g.Remedy("mimulus")
	assert.False(t, ok)
	_, ok = g.Remedy("aspen")
	assert.True(t, ok)
}

func TestRelationHelpers(t *testing.T) {
	rel := Relation{ID: "a-b-combination", Source: "a", Target: "b"}

	assert.True(t, rel.Touches("a"))
	assert.True(t, rel.Touches("b"))
	assert.False(t, rel.Touches("c"))

	assert.Equal(t, "b", rel.Other("a"))
	assert.Equal(t, "a", rel.Other("b"))
	assert.Equal(t, "", rel.Other("c"))
}
