package server

import (
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"

	"github.com/bloomlab/remedygraph/pkg/graph/algorithms"
	"github.com/bloomlab/remedygraph/pkg/remedy"
)

func (s *Server) handleListRemedies(w http.ResponseWriter, r *http.Request) {
	catalog := remedy.All()
	out := make([]remedy.Remedy, 0, len(catalog))
	for _, rem := range catalog {
		out = append(out, rem)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"remedies": out,
		"total":    len(out),
	})
}

func (s *Server) handleRemedyDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "remedyID")

	rem, ok := remedy.Get(id)
	if !ok {
		respondError(w, http.StatusNotFound, "remedy not found")
		return
	}

	connected := []string{}
	traversal := algorithms.NewGraphTraversal(s.graph)
	reachable, err := traversal.Traverse(id, 1, algorithms.BFS)
	if err == nil {
		for _, other := range reachable {
			if other.ID != id {
				connected = append(connected, other.Name)
			}
		}
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"remedy":             rem,
		"connected_remedies": connected,
	})
}
