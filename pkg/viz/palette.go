// Package viz holds the two admin diagnostic views over knowledge-graph
// snapshots: a force-directed relation diagram and a 2D embedding scatter
// plot. Both are pure, synchronous view-models; rendering templates sit on
// top of them.
package viz

import "github.com/bloomlab/remedygraph/pkg/remedy"

// categoryColors is the fixed category→color table shared by both views.
// A category must read identically across the two panels, so nothing else
// may define category colors.
var categoryColors = map[remedy.Category]string{
	remedy.CategoryFear:                 "#ef4444",
	remedy.CategoryUncertainty:          "#8b5cf6",
	remedy.CategoryInsufficientInterest: "#f97316",
	remedy.CategoryLoneliness:           "#3b82f6",
	remedy.CategoryOversensitive:        "#ec4899",
	remedy.CategoryDespondency:          "#6366f1",
	remedy.CategoryOvercare:             "#10b981",
	remedy.CategoryEmergency:            "#dc2626",
}

// Interaction and edge colors.
const (
	fallbackColor = "#9ca3af"
	selectedColor = "#fbbf24"
	hoverColor    = "#f59e0b"
	dimmedColor   = "#d1d5db"

	edgeAccentColor      = "#f59e0b"
	edgeDimmedColor      = "#e5e7eb"
	edgeCombinationColor = "#a855f7"
	edgeOrdinaryColor    = "#94a3b8"
)

// CategoryColor resolves a category to its display color, falling back to
// the neutral color for unrecognized categories.
func CategoryColor(c remedy.Category) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return fallbackColor
}
