package graph

import (
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// RemedyGraph is the in-memory knowledge graph of remedies. The admin
// rebuild swaps node and edge sets under live read traffic, so all access
// goes through the RWMutex.
type RemedyGraph struct {
	mu       sync.RWMutex
	remedies map[string]remedy.Remedy
	edges    map[string]Relation
	logger   *logrus.Logger
}

// NewRemedyGraph creates an empty graph.
func NewRemedyGraph() *RemedyGraph {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &RemedyGraph{
		remedies: make(map[string]remedy.Remedy),
		edges:    make(map[string]Relation),
		logger:   logger,
	}
}

// AddRemedy inserts or replaces a remedy node.
func (g *RemedyGraph) AddRemedy(r remedy.Remedy) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.remedies[r.ID] = r
}

// AddRelation links two remedies. Both endpoints must already exist. The
// edge is undirected: adding b-a after a-b updates the same edge.
func (g *RemedyGraph) AddRelation(source, target, relType string, weight float64) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.remedies[source]; !ok {
		return fmt.Errorf("source remedy not found: %s", source)
	}
	if _, ok := g.remedies[target]; !ok {
		return fmt.Errorf("target remedy not found: %s", target)
	}

	id := relationID(source, target, relType)
	g.edges[id] = Relation{
		ID:     id,
		Source: source,
		Target: target,
		Type:   relType,
		Weight: weight,
	}
	return nil
}

// Remedy looks up a node by ID.
func (g *RemedyGraph) Remedy(id string) (remedy.Remedy, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.remedies[id]
	return r, ok
}

// Neighbors returns the IDs of every remedy directly linked to id, sorted.
// Direct links only; no transitive closure.
func (g *RemedyGraph) Neighbors(id string) []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[string]bool)
	for _, e := range g.edges {
		if other := e.Other(id); other != "" {
			seen[other] = true
		}
	}

	out := make([]string, 0, len(seen))
	for n := range seen {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Degree returns the number of distinct neighbors of id.
func (g *RemedyGraph) Degree(id string) int {
	return len(g.Neighbors(id))
}

// Relations returns a copy of every edge.
func (g *RemedyGraph) Relations() []Relation {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Relation, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Size returns node and edge counts.
func (g *RemedyGraph) Size() (nodes, edges int) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.remedies), len(g.edges)
}

// Replace swaps the graph contents with those of other in one step.
func (g *RemedyGraph) Replace(other *RemedyGraph) {
	other.mu.RLock()
	remedies := make(map[string]remedy.Remedy, len(other.remedies))
	for id, r := range other.remedies {
		remedies[id] = r
	}
	edges := make(map[string]Relation, len(other.edges))
	for id, e := range other.edges {
		edges[id] = e
	}
	other.mu.RUnlock()

	g.mu.Lock()
	g.remedies = remedies
	g.edges = edges
	g.mu.Unlock()

	g.logger.WithFields(logrus.Fields{
		"nodes": len(remedies),
		"edges": len(edges),
	}).Info("Knowledge graph replaced")
}

// Snapshot materializes the immutable payload the visualization views
// render from. Entity connection counts are the node degrees at the time
// of the call.
func (g *RemedyGraph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	degree := make(map[string]map[string]bool, len(g.remedies))
	for _, e := range g.edges {
		if degree[e.Source] == nil {
			degree[e.Source] = make(map[string]bool)
		}
		if degree[e.Target] == nil {
			degree[e.Target] = make(map[string]bool)
		}
		degree[e.Source][e.Target] = true
		degree[e.Target][e.Source] = true
	}

	entities := make([]Entity, 0, len(g.remedies))
	categories := make(map[remedy.Category]bool)
	for _, r := range g.remedies {
		categories[r.Category] = true
		entities = append(entities, Entity{
			ID:            r.ID,
			Name:          r.Name,
			Category:      r.Category,
			SymptomsCount: len(r.Symptoms),
			Connections:   len(degree[r.ID]),
		})
	}
	sort.Slice(entities, func(i, j int) bool { return entities[i].ID < entities[j].ID })

	relations := make([]Relation, 0, len(g.edges))
	for _, e := range g.edges {
		relations = append(relations, e)
	}
	sort.Slice(relations, func(i, j int) bool { return relations[i].ID < relations[j].ID })

	return &Snapshot{
		Entities:  entities,
		Relations: relations,
		Statistics: Statistics{
			TotalNodes:      len(entities),
			TotalEdges:      len(relations),
			CategoriesCount: len(categories),
		},
	}
}
