package viz

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/bloomlab/remedygraph/pkg/graph"
)

// Node sizing. Radius grows with connection count but never below the
// minimum, so zero-connection nodes stay visible. Selection or hover
// doubles the effective radius.
const (
	minNodeRadius  = 6.0
	radiusPerConn  = 1.2
	zoomStep       = 1.25
	edgeBaseWidth  = 1.5
	edgeWideWidth  = 2.5
	edgeAccentWide = 3.5
)

type phase int

const (
	phaseIdle phase = iota
	phaseHovering
	phaseSelected
)

// GraphView renders entities and relations as an interactive force
// diagram. It owns the hover/select/highlight state machine; the force
// simulation itself belongs to the client-side layout library, which this
// view only feeds.
//
// The highlight state is a tagged variant (Idle, Hovering(id) or
// Selected(id)) rather than independent flags, so impossible combinations
// cannot be represented.
type GraphView struct {
	title string
	kind  string

	snap *graph.Snapshot

	phase      phase
	selectedID string
	hoveredID  string

	highlightedEntities  mapset.Set[string]
	highlightedRelations mapset.Set[string]

	zoom float64
}

// NewGraphView creates a view in the Idle state with no snapshot. kind is
// a discriminator for the hosting shell ("knowledge" today) and carries no
// behavior.
func NewGraphView(title, kind string) *GraphView {
	return &GraphView{
		title:                title,
		kind:                 kind,
		highlightedEntities:  mapset.NewSet[string](),
		highlightedRelations: mapset.NewSet[string](),
		zoom:                 1,
	}
}

func (v *GraphView) Title() string { return v.title }
func (v *GraphView) Kind() string  { return v.kind }

// HasData reports whether a snapshot is present. Without one the view
// renders a titled empty-state placeholder and performs no computation.
func (v *GraphView) HasData() bool { return v.snap != nil }

// Snapshot returns the current snapshot, nil when absent.
func (v *GraphView) Snapshot() *graph.Snapshot { return v.snap }

// SetSnapshot replaces the snapshot wholesale and resets all highlight
// state. There is no incremental merge; a superseding snapshot simply
// replaces the prior one.
func (v *GraphView) SetSnapshot(snap *graph.Snapshot) {
	v.snap = snap
	v.clearHighlight()
	v.zoom = 1
}

// Hover moves Idle → Hovering(id). While a selection is active, the hover
// is recorded transiently but the selection's highlight sets stay in
// place: selection takes visual precedence.
func (v *GraphView) Hover(id string) {
	if v.snap == nil {
		return
	}
	if v.phase == phaseSelected {
		v.hoveredID = id
		return
	}
	v.phase = phaseHovering
	v.hoveredID = id
	v.computeHighlight(id)
}

// Leave ends a hover. A selection, if any, persists.
func (v *GraphView) Leave() {
	if v.phase == phaseSelected {
		v.hoveredID = ""
		return
	}
	v.clearHighlight()
}

// Click selects an entity, replacing any previous selection.
func (v *GraphView) Click(id string) {
	if v.snap == nil {
		return
	}
	v.phase = phaseSelected
	v.selectedID = id
	v.hoveredID = ""
	v.computeHighlight(id)
}

// ClickBackground clears the selection and every highlight.
func (v *GraphView) ClickBackground() {
	v.clearHighlight()
}

// SelectedID returns the selected entity, if any.
func (v *GraphView) SelectedID() (string, bool) {
	return v.selectedID, v.phase == phaseSelected
}

// HoveredID returns the hovered entity, if any.
func (v *GraphView) HoveredID() (string, bool) {
	return v.hoveredID, v.hoveredID != ""
}

// HighlightedEntityIDs is the focused entity plus its direct neighbors.
func (v *GraphView) HighlightedEntityIDs() mapset.Set[string] {
	return v.highlightedEntities
}

// HighlightedRelationIDs is every relation touching the focused entity.
func (v *GraphView) HighlightedRelationIDs() mapset.Set[string] {
	return v.highlightedRelations
}

// computeHighlight derives the highlight sets for entity id: one pass over
// the relations, collecting touching relations and their endpoints. Direct
// neighbors only, no transitive closure.
func (v *GraphView) computeHighlight(id string) {
	entities := mapset.NewSet[string](id)
	relations := mapset.NewSet[string]()

	for _, rel := range v.snap.Relations {
		if !rel.Touches(id) {
			continue
		}
		relations.Add(rel.ID)
		entities.Add(rel.Source)
		entities.Add(rel.Target)
	}

	v.highlightedEntities = entities
	v.highlightedRelations = relations
}

func (v *GraphView) clearHighlight() {
	v.phase = phaseIdle
	v.selectedID = ""
	v.hoveredID = ""
	v.highlightedEntities = mapset.NewSet[string]()
	v.highlightedRelations = mapset.NewSet[string]()
}

func (v *GraphView) highlightActive() bool {
	return v.phase != phaseIdle
}

// NodeColor resolves an entity's fill color. Precedence, highest first:
// selected, hovered (only while nothing is selected), member of the
// highlighted set, dimmed while a highlight is active, category color.
func (v *GraphView) NodeColor(e graph.Entity) string {
	if v.phase == phaseSelected && e.ID == v.selectedID {
		return selectedColor
	}
	if v.phase == phaseHovering && e.ID == v.hoveredID {
		return hoverColor
	}
	if v.highlightActive() {
		if v.highlightedEntities.Contains(e.ID) {
			return CategoryColor(e.Category)
		}
		return dimmedColor
	}
	return CategoryColor(e.Category)
}

// NodeRadius resolves an entity's radius: monotonic in connection count,
// clamped to a minimum, doubled while the entity is selected or hovered.
func (v *GraphView) NodeRadius(e graph.Entity) float64 {
	r := minNodeRadius + radiusPerConn*float64(e.Connections)
	if r < minNodeRadius {
		r = minNodeRadius
	}
	if (v.phase == phaseSelected && e.ID == v.selectedID) ||
		(v.hoveredID != "" && e.ID == v.hoveredID) {
		r *= 2
	}
	return r
}

// EdgeColor resolves a relation's stroke color with the same precedence as
// nodes: accent while highlighted, dimmed while any highlight is active,
// otherwise a type-dependent color.
func (v *GraphView) EdgeColor(rel graph.Relation) string {
	if v.highlightActive() {
		if v.highlightedRelations.Contains(rel.ID) {
			return edgeAccentColor
		}
		return edgeDimmedColor
	}
	if rel.Type == graph.RelationCombination {
		return edgeCombinationColor
	}
	return edgeOrdinaryColor
}

// EdgeWidth resolves a relation's stroke width: highlighted relations draw
// wider; otherwise width follows weight, wider above 0.5.
func (v *GraphView) EdgeWidth(rel graph.Relation) float64 {
	if v.highlightActive() && v.highlightedRelations.Contains(rel.ID) {
		return edgeAccentWide
	}
	if rel.Weight > 0.5 {
		return edgeWideWidth
	}
	return edgeBaseWidth
}

// Zoom returns the current zoom factor.
func (v *GraphView) Zoom() float64 { return v.zoom }

// ZoomIn multiplies the zoom factor by one step.
func (v *GraphView) ZoomIn() { v.zoom *= zoomStep }

// ZoomOut divides the zoom factor by one step.
func (v *GraphView) ZoomOut() { v.zoom /= zoomStep }

// Reset re-fits the layout (zoom back to 1) and clears selection and
// highlight state.
func (v *GraphView) Reset() {
	v.zoom = 1
	v.clearHighlight()
}
