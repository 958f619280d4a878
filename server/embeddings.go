package server

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/bloomlab/remedygraph/pkg/remedy"
	"github.com/bloomlab/remedygraph/pkg/viz"
)

// embeddingSnapshot returns the catalog embedding projection, embedding
// the whole catalog in one call and caching the result until the next
// knowledge-base rebuild.
func (s *Server) embeddingSnapshot(ctx context.Context) (*viz.EmbeddingSnapshot, error) {
	s.embedMu.Lock()
	defer s.embedMu.Unlock()

	if s.embedSnap != nil {
		return s.embedSnap, nil
	}

	catalog := remedy.All()
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	texts := make([]string, len(ids))
	for i, id := range ids {
		texts[i] = catalog[id].IndexText()
	}

	vectors, err := s.embedder.Embed(ctx, texts)
	if err != nil {
		return nil, errors.Wrap(err, "embedding catalog")
	}
	if len(vectors) != len(ids) {
		return nil, errors.Errorf("embedding count mismatch: got %d, want %d", len(vectors), len(ids))
	}

	entities := make([]viz.EmbeddingEntity, len(ids))
	for i, id := range ids {
		rem := catalog[id]

		preview := make([]float64, 0, embeddingPreviewLen)
		for j, v := range vectors[i] {
			if j == embeddingPreviewLen {
				break
			}
			preview = append(preview, float64(v))
		}

		entities[i] = viz.EmbeddingEntity{
			Name:             rem.Name,
			Category:         rem.Category,
			SymptomsCount:    len(rem.Symptoms),
			EmbeddingPreview: preview,
		}
	}

	s.embedSnap = &viz.EmbeddingSnapshot{
		Entities:            entities,
		TotalRemedies:       len(entities),
		EmbeddingDimensions: int(s.embedder.Dimensions()),
		ModelInfo:           viz.ModelInfo{Name: s.embedder.ModelName()},
	}
	return s.embedSnap, nil
}

func (s *Server) invalidateEmbeddingSnapshot() {
	s.embedMu.Lock()
	s.embedSnap = nil
	s.embedMu.Unlock()
}
