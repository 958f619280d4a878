// Package query filters knowledge-graph snapshots for the admin
// visualization endpoints.
package query

import (
	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// Filter narrows a snapshot. Zero values leave a dimension unfiltered.
type Filter struct {
	Category  remedy.Category `json:"category,omitempty"`
	Type      string          `json:"type,omitempty"`
	MinWeight float64         `json:"min_weight,omitempty"`
}

// Empty reports whether the filter keeps everything.
func (f Filter) Empty() bool {
	return f.Category == "" && f.Type == "" && f.MinWeight == 0
}

// Apply builds a new snapshot containing only matching entities and the
// relations whose endpoints both survive. Statistics are recomputed for
// the filtered view.
func Apply(snap *graph.Snapshot, f Filter) *graph.Snapshot {
	if snap == nil {
		return nil
	}
	if f.Empty() {
		return snap
	}

	keep := make(map[string]bool, len(snap.Entities))
	entities := make([]graph.Entity, 0, len(snap.Entities))
	categories := make(map[remedy.Category]bool)
	for _, e := range snap.Entities {
		if f.Category != "" && e.Category != f.Category {
			continue
		}
		keep[e.ID] = true
		categories[e.Category] = true
		entities = append(entities, e)
	}

	relations := make([]graph.Relation, 0, len(snap.Relations))
	degree := make(map[string]map[string]bool)
	for _, r := range snap.Relations {
		if !keep[r.Source] || !keep[r.Target] {
			continue
		}
		if f.Type != "" && r.Type != f.Type {
			continue
		}
		if r.Weight < f.MinWeight {
			continue
		}
		relations = append(relations, r)
		if degree[r.Source] == nil {
			degree[r.Source] = make(map[string]bool)
		}
		if degree[r.Target] == nil {
			degree[r.Target] = make(map[string]bool)
		}
		degree[r.Source][r.Target] = true
		degree[r.Target][r.Source] = true
	}

	for i := range entities {
		entities[i].Connections = len(degree[entities[i].ID])
	}

	return &graph.Snapshot{
		Entities:  entities,
		Relations: relations,
		Statistics: graph.Statistics{
			TotalNodes:      len(entities),
			TotalEdges:      len(relations),
			CategoriesCount: len(categories),
		},
	}
}
