package viz

import (
	"fmt"
	"math"
	"strings"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// Plot geometry and marker styling.
const (
	plotWidth  = 800.0
	plotHeight = 500.0

	minMarkerRadius = 4.0
	maxMarkerRadius = 16.0

	labelThreshold = 5

	hoverGrowth       = 1.5
	baseStrokeWidth   = 1.5
	hoverStrokeWidth  = 3.0
	intensityFromHex  = "#e0e7ff"
	intensityToHex    = "#3730a3"
	tooltipPreviewLen = 3
)

// EmbeddingEntity is a remedy as it appears in an embedding snapshot. The
// snapshot contract guarantees at least three embedding coordinates; the
// view does not defend against shorter previews.
type EmbeddingEntity struct {
	Name             string          `json:"name"`
	Category         remedy.Category `json:"category"`
	SymptomsCount    int             `json:"symptoms_count"`
	EmbeddingPreview []float64       `json:"embedding_preview"`
}

// ModelInfo names the embedding model that produced the vectors.
type ModelInfo struct {
	Name string `json:"name"`
}

// EmbeddingSnapshot is the immutable payload the scatter plot renders from.
type EmbeddingSnapshot struct {
	Entities            []EmbeddingEntity `json:"entities"`
	TotalRemedies       int               `json:"total_remedies"`
	EmbeddingDimensions int               `json:"embedding_dimensions"`
	ModelInfo           ModelInfo         `json:"model_info"`
}

// Marker is one positioned, sized, colored plot marker.
type Marker struct {
	Name          string
	Category      remedy.Category
	SymptomsCount int
	X             float64
	Y             float64
	Radius        float64
	Fill          string
	Stroke        string
	StrokeWidth   float64
	Labeled       bool
	Hovered       bool
}

// EmbeddingView projects entities onto their first two embedding
// coordinates and renders them as a scatter plot with hover tooltips.
type EmbeddingView struct {
	title string
	snap  *EmbeddingSnapshot

	xScale LinearScale
	yScale LinearScale
	rScale SqrtScale
	cScale SequentialScale

	hovered string
}

// NewEmbeddingView creates a view with no snapshot.
func NewEmbeddingView(title string) *EmbeddingView {
	return &EmbeddingView{title: title}
}

func (v *EmbeddingView) Title() string { return v.title }

// HasData reports whether a snapshot is present. Without one the view
// renders a titled empty-state placeholder and computes no scales.
func (v *EmbeddingView) HasData() bool { return v.snap != nil && len(v.snap.Entities) > 0 }

// Snapshot returns the current snapshot, nil when absent.
func (v *EmbeddingView) Snapshot() *EmbeddingSnapshot { return v.snap }

// SetSnapshot replaces the snapshot wholesale, recomputes every scale and
// drops transient hover state.
func (v *EmbeddingView) SetSnapshot(snap *EmbeddingSnapshot) {
	v.snap = snap
	v.hovered = ""
	if snap == nil || len(snap.Entities) == 0 {
		return
	}

	first := snap.Entities[0]
	minX, maxX := first.EmbeddingPreview[0], first.EmbeddingPreview[0]
	minY, maxY := first.EmbeddingPreview[1], first.EmbeddingPreview[1]
	maxSymptoms := 0
	minIntensity, maxIntensity := math.Abs(first.EmbeddingPreview[2]), math.Abs(first.EmbeddingPreview[2])

	for _, e := range snap.Entities {
		x, y := e.EmbeddingPreview[0], e.EmbeddingPreview[1]
		intensity := math.Abs(e.EmbeddingPreview[2])
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
		minIntensity = math.Min(minIntensity, intensity)
		maxIntensity = math.Max(maxIntensity, intensity)
		if e.SymptomsCount > maxSymptoms {
			maxSymptoms = e.SymptomsCount
		}
	}

	v.xScale = NewLinearScale(minX, maxX, 0, plotWidth)
	// Inverted range: larger y maps to a smaller screen coordinate.
	v.yScale = NewLinearScale(minY, maxY, plotHeight, 0)
	v.rScale = NewSqrtScale(0, float64(maxSymptoms), minMarkerRadius, maxMarkerRadius)
	v.cScale = NewSequentialScale(minIntensity, maxIntensity, intensityFromHex, intensityToHex)
}

// XScale exposes the horizontal scale for axis rendering.
func (v *EmbeddingView) XScale() LinearScale { return v.xScale }

// YScale exposes the (inverted) vertical scale for axis rendering.
func (v *EmbeddingView) YScale() LinearScale { return v.yScale }

// RadiusScale exposes the marker radius scale.
func (v *EmbeddingView) RadiusScale() SqrtScale { return v.rScale }

// ColorScale exposes the intensity color scale.
func (v *EmbeddingView) ColorScale() SequentialScale { return v.cScale }

// Hover marks an entity as hovered: its marker enlarges and its border
// thickens until Leave.
func (v *EmbeddingView) Hover(name string) {
	if v.snap == nil {
		return
	}
	v.hovered = name
}

// Leave reverts the hover.
func (v *EmbeddingView) Leave() { v.hovered = "" }

// Hovered returns the hovered entity name, if any.
func (v *EmbeddingView) Hovered() (string, bool) {
	return v.hovered, v.hovered != ""
}

// Markers projects every entity through the current scales. Returns nil
// when no snapshot is present.
func (v *EmbeddingView) Markers() []Marker {
	if !v.HasData() {
		return nil
	}

	markers := make([]Marker, 0, len(v.snap.Entities))
	for _, e := range v.snap.Entities {
		x := e.EmbeddingPreview[0]
		y := e.EmbeddingPreview[1]
		intensity := math.Abs(e.EmbeddingPreview[2])

		m := Marker{
			Name:          e.Name,
			Category:      e.Category,
			SymptomsCount: e.SymptomsCount,
			X:             v.xScale.Map(x),
			Y:             v.yScale.Map(y),
			Radius:        v.rScale.Map(float64(e.SymptomsCount)),
			Fill:          v.cScale.Map(intensity),
			Stroke:        CategoryColor(e.Category),
			StrokeWidth:   baseStrokeWidth,
			Labeled:       e.SymptomsCount > labelThreshold,
		}
		if e.Name == v.hovered {
			m.Radius *= hoverGrowth
			m.StrokeWidth = hoverStrokeWidth
			m.Hovered = true
		}
		markers = append(markers, m)
	}
	return markers
}

// Tooltip builds the hover tooltip text for an entity: name, category,
// symptom count, declared dimensionality, and the first three embedding
// values to three decimals with a truncation ellipsis.
func (v *EmbeddingView) Tooltip(name string) (string, bool) {
	if v.snap == nil {
		return "", false
	}
	for _, e := range v.snap.Entities {
		if e.Name != name {
			continue
		}

		parts := make([]string, 0, tooltipPreviewLen)
		for i := 0; i < tooltipPreviewLen && i < len(e.EmbeddingPreview); i++ {
			parts = append(parts, fmt.Sprintf("%.3f", e.EmbeddingPreview[i]))
		}

		return fmt.Sprintf("%s\nCategory: %s\nSymptoms: %d\nDimensions: %d\nEmbedding: %s...",
			e.Name, e.Category, e.SymptomsCount, v.snap.EmbeddingDimensions,
			strings.Join(parts, ", ")), true
	}
	return "", false
}
