package algorithms

import (
	"fmt"

	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/remedy"
)

type TraversalType string

const (
	BFS TraversalType = "BFS"
	DFS TraversalType = "DFS"
)

// GraphTraversal walks the remedy graph by neighbor links.
type GraphTraversal struct {
	graph *graph.RemedyGraph
}

func NewGraphTraversal(g *graph.RemedyGraph) *GraphTraversal {
	return &GraphTraversal{graph: g}
}

// Traverse collects remedies reachable from startID within maxDepth hops,
// starting with the start remedy itself.
func (t *GraphTraversal) Traverse(startID string, maxDepth int, traversalType TraversalType) ([]remedy.Remedy, error) {
	if _, ok := t.graph.Remedy(startID); !ok {
		return nil, fmt.Errorf("remedy not found: %s", startID)
	}

	visited := make(map[string]bool)

	switch traversalType {
	case BFS:
		return t.bfs(startID, maxDepth, visited), nil
	case DFS:
		result := make([]remedy.Remedy, 0)
		t.dfs(startID, maxDepth, visited, &result)
		return result, nil
	default:
		return nil, fmt.Errorf("unsupported traversal type: %s", traversalType)
	}
}

func (t *GraphTraversal) bfs(startID string, maxDepth int, visited map[string]bool) []remedy.Remedy {
	queue := []string{startID}
	result := make([]remedy.Remedy, 0)

	for depth := 0; len(queue) > 0 && depth <= maxDepth; depth++ {
		levelSize := len(queue)
		for i := 0; i < levelSize; i++ {
			current := queue[0]
			queue = queue[1:]

			if visited[current] {
				continue
			}
			visited[current] = true

			r, ok := t.graph.Remedy(current)
			if !ok {
				continue
			}
			result = append(result, r)

			for _, n := range t.graph.Neighbors(current) {
				if !visited[n] {
					queue = append(queue, n)
				}
			}
		}
	}

	return result
}

func (t *GraphTraversal) dfs(currentID string, maxDepth int, visited map[string]bool, result *[]remedy.Remedy) {
	if maxDepth < 0 || visited[currentID] {
		return
	}
	visited[currentID] = true

	r, ok := t.graph.Remedy(currentID)
	if !ok {
		return
	}
	*result = append(*result, r)

	for _, n := range t.graph.Neighbors(currentID) {
		if !visited[n] {
			t.dfs(n, maxDepth-1, visited, result)
		}
	}
}
