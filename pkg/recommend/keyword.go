package recommend

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// Relevance weights for word overlap against the three remedy text fields.
// The emotional state is the tightest description, so it counts most.
const (
	symptomsWeight       = 2.0
	emotionalStateWeight = 3.0
	remedyForWeight      = 2.5
)

// GraphMatch is one knowledge-graph recommendation.
type GraphMatch struct {
	RemedyID          string
	Relevance         float64
	ConnectedRemedies []string
}

// GraphScorer ranks remedies by symptom word overlap and annotates hits
// with their graph neighbors for combination suggestions.
type GraphScorer struct {
	catalog map[string]remedy.Remedy
	graph   *graph.RemedyGraph
}

func NewGraphScorer(catalog map[string]remedy.Remedy, g *graph.RemedyGraph) *GraphScorer {
	return &GraphScorer{catalog: catalog, graph: g}
}

// Score computes the relevance of every remedy for the symptom text.
func (s *GraphScorer) Score(symptoms string) map[string]float64 {
	words := wordSet(symptoms)

	scores := make(map[string]float64, len(s.catalog))
	for id, r := range s.catalog {
		score := 0.0
		score += float64(words.Intersect(wordSet(strings.Join(r.Symptoms, " "))).Cardinality()) * symptomsWeight
		score += float64(words.Intersect(wordSet(r.EmotionalState)).Cardinality()) * emotionalStateWeight
		score += float64(words.Intersect(wordSet(r.RemedyFor)).Cardinality()) * remedyForWeight
		scores[id] = score
	}
	return scores
}

// Top returns the topK remedies with nonzero relevance, best first, each
// annotated with up to three connected remedy names.
func (s *GraphScorer) Top(symptoms string, topK int) []GraphMatch {
	scores := s.Score(symptoms)

	ids := make([]string, 0, len(scores))
	for id := range scores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if scores[ids[i]] != scores[ids[j]] {
			return scores[ids[i]] > scores[ids[j]]
		}
		return ids[i] < ids[j]
	})

	matches := make([]GraphMatch, 0, topK)
	for _, id := range ids {
		if len(matches) == topK {
			break
		}
		if scores[id] <= 0 {
			break
		}

		connected := make([]string, 0, 3)
		for _, n := range s.graph.Neighbors(id) {
			if len(connected) == 3 {
				break
			}
			if r, ok := s.catalog[n]; ok {
				connected = append(connected, r.Name)
			}
		}

		matches = append(matches, GraphMatch{
			RemedyID:          id,
			Relevance:         scores[id],
			ConnectedRemedies: connected,
		})
	}
	return matches
}

func wordSet(text string) mapset.Set[string] {
	set := mapset.NewSet[string]()
	for _, w := range strings.Fields(strings.ToLower(text)) {
		set.Add(strings.Trim(w, ".,;:!?\"'()"))
	}
	return set
}
