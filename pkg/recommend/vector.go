package recommend

import (
	"context"
	"sort"
	"sync"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// Match is one vector-similarity hit.
type Match struct {
	RemedyID string
	Score    float64
}

// Index is a vector index over the remedy catalog.
type Index interface {
	// Rebuild re-embeds every remedy's index text and replaces the index
	// contents.
	Rebuild(ctx context.Context, catalog map[string]remedy.Remedy) error

	// Search embeds the query and returns the topK most similar remedies,
	// best first.
	Search(ctx context.Context, query string, topK int) ([]Match, error)
}

// MemoryIndex holds remedy vectors in process and scores queries by cosine
// similarity. It serves as the default when no Qdrant instance is
// configured; the catalog is small enough that a linear scan is fine.
type MemoryIndex struct {
	embedder Embedder

	mu      sync.RWMutex
	ids     []string
	vectors [][]float64
}

func NewMemoryIndex(embedder Embedder) *MemoryIndex {
	return &MemoryIndex{embedder: embedder}
}

func (m *MemoryIndex) Rebuild(ctx context.Context, catalog map[string]remedy.Remedy) error {
	ids := make([]string, 0, len(catalog))
	texts := make([]string, 0, len(catalog))
	for _, id := range sortedIDs(catalog) {
		ids = append(ids, id)
		texts = append(texts, catalog[id].IndexText())
	}

	embedded, err := m.embedder.Embed(ctx, texts)
	if err != nil {
		return errors.Wrap(err, "embedding catalog")
	}

	vectors := make([][]float64, len(embedded))
	for i, v := range embedded {
		vectors[i] = toFloat64(v)
	}

	m.mu.Lock()
	m.ids = ids
	m.vectors = vectors
	m.mu.Unlock()
	return nil
}

func (m *MemoryIndex) Search(ctx context.Context, query string, topK int) ([]Match, error) {
	embedded, err := m.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, errors.Wrap(err, "embedding query")
	}
	queryVec := toFloat64(embedded[0])

	m.mu.RLock()
	defer m.mu.RUnlock()

	matches := make([]Match, 0, len(m.ids))
	for i, id := range m.ids {
		matches = append(matches, Match{
			RemedyID: id,
			Score:    cosineSimilarity(queryVec, m.vectors[i]),
		})
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].Score > matches[j].Score })
	if topK < len(matches) {
		matches = matches[:topK]
	}
	return matches, nil
}

// cosineSimilarity returns the cosine of the angle between a and b, or 0
// when either vector is zero.
func cosineSimilarity(a, b []float64) float64 {
	normA := floats.Norm(a, 2)
	normB := floats.Norm(b, 2)
	if normA == 0 || normB == 0 {
		return 0
	}
	return floats.Dot(a, b) / (normA * normB)
}

func toFloat64(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}

func sortedIDs(catalog map[string]remedy.Remedy) []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
