package graph

import (
	"fmt"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// Relation type tags. "combination" marks edges derived from a remedy's
// suggested combinations; everything else is "ordinary".
const (
	RelationOrdinary    = "ordinary"
	RelationCombination = "combination"
)

// Entity is a remedy as it appears in a visualization snapshot.
type Entity struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Category      remedy.Category `json:"category"`
	SymptomsCount int             `json:"symptoms_count"`
	Connections   int             `json:"connections"`
}

// Relation is an undirected link between two entities. IDs are canonical
// strings assigned at construction time so that every comparison site works
// on one identifier type.
type Relation struct {
	ID     string  `json:"-"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Type   string  `json:"type"`
	Weight float64 `json:"weight"`
}

// Touches reports whether the relation has id as either endpoint.
func (r Relation) Touches(id string) bool {
	return r.Source == id || r.Target == id
}

// Other returns the opposite endpoint of id, or "" when id is not an
// endpoint of the relation.
func (r Relation) Other(id string) string {
	switch id {
	case r.Source:
		return r.Target
	case r.Target:
		return r.Source
	}
	return ""
}

// Statistics summarizes a snapshot for the admin panels.
type Statistics struct {
	TotalNodes      int `json:"total_nodes"`
	TotalEdges      int `json:"total_edges"`
	CategoriesCount int `json:"categories_count"`
}

// Snapshot is the immutable payload a graph visualization renders from.
// It is created wholesale per request and never mutated afterwards.
type Snapshot struct {
	Entities   []Entity   `json:"entities"`
	Relations  []Relation `json:"relations"`
	Statistics Statistics `json:"statistics"`
}

// relationID builds the canonical edge identifier for an unordered pair.
// The smaller endpoint always comes first so the two directions of the
// same link collapse to one edge.
func relationID(a, b, relType string) string {
	if b < a {
		a, b = b, a
	}
	return fmt.Sprintf("%s-%s-%s", a, relType, b)
}
