package graph

import (
	"github.com/sirupsen/logrus"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// Edge weights mirror how the knowledge base relates remedies: explicit
// combination suggestions carry more weight than sharing a category.
const (
	combinationWeight = 0.8
	categoryWeight    = 0.6
)

// Build constructs the remedy knowledge graph from a catalog. Every remedy
// becomes a node; a "combination" edge (weight 0.8) links a remedy to each
// of its suggested combinations, and an "ordinary" edge (weight 0.6) links
// every pair of remedies sharing a category.
func Build(catalog map[string]remedy.Remedy) *RemedyGraph {
	g := NewRemedyGraph()

	for _, r := range catalog {
		g.AddRemedy(r)
	}

	// All combination edges go in first so the category pass can see them:
	// a pair that is both a combination and same-category keeps only the
	// combination edge.
	for id, r := range catalog {
		for _, combo := range r.Combinations {
			if _, ok := catalog[combo]; !ok {
				g.logger.WithFields(logrus.Fields{
					"remedy":      id,
					"combination": combo,
				}).Warn("Skipping combination with unknown remedy")
				continue
			}
			if err := g.AddRelation(id, combo, RelationCombination, combinationWeight); err != nil {
				continue
			}
		}
	}

	for id, r := range catalog {
		for otherID, other := range catalog {
			if otherID == id || other.Category != r.Category {
				continue
			}
			// Combination edges win over category edges for the same pair.
			if _, exists := g.edges[relationID(id, otherID, RelationCombination)]; exists {
				continue
			}
			if err := g.AddRelation(id, otherID, RelationOrdinary, categoryWeight); err != nil {
				continue
			}
		}
	}

	return g
}
