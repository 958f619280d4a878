package viz

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
			{ID: "aspen", Name: "Aspen", Category: remedy.CategoryFear, SymptomsCount: 4, Connections: 1},
			{ID: "mimulus", Name: "Mimulus", Category: remedy.CategoryFear, SymptomsCount: 3, Connections: 2},
			{ID: "willow", Name: "Willow", Category: remedy.CategoryDespondency, SymptomsCount: 5, Connections: 1},
		},
		Relations: []graph.Relation{
			{ID: "aspen-mimulus-combination", Source: "aspen", Target: "mimulus", Type: graph.RelationCombination, Weight: 0.8},
			{ID: "mimulus-willow-ordinary", Source: "mimulus", Target: "willow", Type: graph.RelationOrdinary, Weight: 0.3},
		},
		Statistics: graph.Statistics{TotalNodes: 3, TotalEdges: 2, CategoriesCount: 2},
	}
}

func newTestGraphView() *GraphView {
	v := NewGraphView("Remedy Knowledge Graph", "knowledge")
	v.SetSnapshot(testSnapshot())
	return v
}

func TestGraphViewHoverHighlightsNeighborhood(t *testing.T) {
	v := newTestGraphView()

	v.Hover("aspen")

	hovered, ok := v.HoveredID()
	require.True(t, ok)
	assert.Equal(t, "aspen", hovered)

	entities := v.HighlightedEntityIDs()
	assert.Equal(t, 2, entities.Cardinality())
	assert.True(t, entities.Contains("aspen"))
	assert.True(t, entities.Contains("mimulus"))
	assert.False(t, entities.Contains("willow"))

	relations := v.HighlightedRelationIDs()
	assert.Equal(t, 1, relations.Cardinality())
	assert.True(t, relations.Contains("aspen-mimulus-combination"))
}

func TestGraphViewLeaveClearsHover(t *testing.T) {
	v := newTestGraphView()

	v.Hover("aspen")
	v.Leave()

	_, ok := v.HoveredID()
	assert.False(t, ok)
	assert.Equal(t, 0, v.HighlightedEntityIDs().Cardinality())
	assert.Equal(t, 0, v.HighlightedRelationIDs().Cardinality())
}

func TestGraphViewClickSelects(t *testing.T) {
	v := newTestGraphView()

	v.Click("mimulus")

	selected, ok := v.SelectedID()
	require.True(t, ok)
	assert.Equal(t, "mimulus", selected)

	entities := v.HighlightedEntityIDs()
	assert.Equal(t, 3, entities.Cardinality())
	assert.Equal(t, 2, v.HighlightedRelationIDs().Cardinality())
}

func TestGraphViewSelectionSurvivesHover(t *testing.T) {
	v := newTestGraphView()

	v.Click("aspen")
	v.Hover("willow")

	selected, ok := v.SelectedID()
	require.True(t, ok)
	assert.Equal(t, "aspen", selected)

	// The selection's neighborhood stays highlighted.
	entities := v.HighlightedEntityIDs()
	assert.True(t, entities.Contains("aspen"))
	assert.True(t, entities.Contains("mimulus"))
	assert.False(t, entities.Contains("willow"))

	v.Leave()
	_, stillSelected := v.SelectedID()
	assert.True(t, stillSelected)
	assert.True(t, v.HighlightedEntityIDs().Contains("aspen"))
}

func TestGraphViewBackgroundClickClears(t *testing.T) {
	v := newTestGraphView()

	v.Click("mimulus")
	v.ClickBackground()

	_, selected := v.SelectedID()
	assert.False(t, selected)
	assert.Equal(t, 0, v.HighlightedEntityIDs().Cardinality())
	assert.Equal(t, 0, v.HighlightedRelationIDs().Cardinality())
}

func TestGraphViewNodeColorPrecedence(t *testing.T) {
	v := newTestGraphView()
	aspen := v.Snapshot().Entities[0]
	mimulus := v.Snapshot().Entities[1]
	willow := v.Snapshot().Entities[2]

	// Idle: category colors throughout.
	assert.Equal(t, "#ef4444", v.NodeColor(aspen))
	assert.Equal(t, "#ef4444", v.NodeColor(mimulus))

	// Selected entity wins over its category.
	v.Click("aspen")
	assert.Equal(t, "#fbbf24", v.NodeColor(aspen))

	// Highlighted neighbor keeps its category color, outsiders dim.
	assert.Equal(t, "#ef4444", v.NodeColor(mimulus))
	assert.Equal(t, dimmedColor, v.NodeColor(willow))

	// Hover color applies only while nothing is selected.
	v.ClickBackground()
	v.Hover("willow")
	assert.Equal(t, hoverColor, v.NodeColor(willow))
}

func TestGraphViewNodeColorFallback(t *testing.T) {
	v := newTestGraphView()
	unknown := graph.Entity{ID: "x", Category: remedy.Category("unknown")}
	assert.Equal(t, fallbackColor, v.NodeColor(unknown))
}

func TestGraphViewNodeRadius(t *testing.T) {
	v := newTestGraphView()
	aspen := v.Snapshot().Entities[0]
	mimulus := v.Snapshot().Entities[1]

	// Monotonic in connections, clamped at the minimum.
	isolated := graph.Entity{ID: "x", Connections: 0}
	assert.Equal(t, minNodeRadius, v.NodeRadius(isolated))
	assert.Greater(t, v.NodeRadius(mimulus), v.NodeRadius(aspen))

	// Selection doubles the radius.
	base := v.NodeRadius(aspen)
	v.Click("aspen")
	assert.Equal(t, base*2, v.NodeRadius(aspen))
}

func TestGraphViewEdgeStyling(t *testing.T) {
	v := newTestGraphView()
	combination := v.Snapshot().Relations[0]
	ordinary := v.Snapshot().Relations[1]

	// Idle: type color, weight-dependent width.
	assert.Equal(t, edgeCombinationColor, v.EdgeColor(combination))
	assert.Equal(t, edgeOrdinaryColor, v.EdgeColor(ordinary))
	assert.Equal(t, edgeWideWidth, v.EdgeWidth(combination))
	assert.Equal(t, edgeBaseWidth, v.EdgeWidth(ordinary))

	// Highlight: touching edges accent and widen, the rest dim.
	v.Click("aspen")
	assert.Equal(t, edgeAccentColor, v.EdgeColor(combination))
	assert.Equal(t, edgeAccentWide, v.EdgeWidth(combination))
	assert.Equal(t, edgeDimmedColor, v.EdgeColor(ordinary))
}

func TestGraphViewZoom(t *testing.T) {
	v := newTestGraphView()

	v.ZoomIn()
	assert.InDelta(t, 1.25, v.Zoom(), 1e-9)
	v.ZoomOut()
	assert.InDelta(t, 1.0, v.Zoom(), 1e-9)

	v.Click("aspen")
	v.ZoomIn()
	v.Reset()
	assert.Equal(t, 1.0, v.Zoom())
	_, selected := v.SelectedID()
	assert.False(t, selected)
}

func TestGraphViewWithoutSnapshot(t *testing.T) {
	v := NewGraphView("Remedy Knowledge Graph", "knowledge")

	assert.False(t, v.HasData())

	v.Hover("aspen")
	v.Click("aspen")

	_, hovered := v.HoveredID()
	assert.False(t, hovered)
	assert.Equal(t, 0, v.HighlightedEntityIDs().Cardinality())
}

func TestGraphViewSetSnapshotResetsState(t *testing.T) {
	v := newTestGraphView()

	v.Click("aspen")
	v.ZoomIn()
	v.SetSnapshot(testSnapshot())

	_, selected := v.SelectedID()
	assert.False(t, selected)
	assert.Equal(t, 0, v.HighlightedEntityIDs().Cardinality())
	assert.Equal(t, 1.0, v.Zoom())
}
