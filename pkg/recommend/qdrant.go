package recommend

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/qdrant/go-client/qdrant"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// QdrantIndex backs the vector search with a Qdrant collection. Rebuild
// recreates the collection so stale remedy vectors never linger after a
// knowledge base rebuild.
type QdrantIndex struct {
	client     *qdrant.Client
	collection string
	embedder   Embedder
}

func NewQdrantIndex(client *qdrant.Client, collection string, embedder Embedder) *QdrantIndex {
	return &QdrantIndex{
		client:     client,
		collection: collection,
		embedder:   embedder,
	}
}

func (q *QdrantIndex) Rebuild(ctx context.Context, catalog map[string]remedy.Remedy) error {
	if info, err := q.client.GetCollectionInfo(ctx, q.collection); err == nil && info != nil {
		if err := q.client.DeleteCollection(ctx, q.collection); err != nil {
			return fmt.Errorf("failed to delete collection: %v", err)
		}
	}

	err := q.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: q.collection,
		VectorsConfig: &qdrant.VectorsConfig{
			Config: &qdrant.VectorsConfig_Params{
				Params: &qdrant.VectorParams{
					Size:     q.embedder.Dimensions(),
					Distance: qdrant.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %v", err)
	}

	ids := sortedIDs(catalog)
	texts := make([]string, len(ids))
	for i, id := range ids {
		texts[i] = catalog[id].IndexText()
	}

	embedded, err := q.embedder.Embed(ctx, texts)
	if err != nil {
		return err
	}

	var points []*qdrant.PointStruct
	for i, id := range ids {
		point := &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(uuid.NewSHA1(uuid.NameSpaceURL, []byte(id)).String()),
			Vectors: qdrant.NewVectors(embedded[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				"remedy_id": id,
				"category":  string(catalog[id].Category),
				"model":     q.embedder.ModelName(),
			}),
		}
		points = append(points, point)
	}

	waitUpsert := true
	_, err = q.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: q.collection,
		Wait:           &waitUpsert,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert points: %v", err)
	}

	return nil
}

func (q *QdrantIndex) Search(ctx context.Context, query string, topK int) ([]Match, error) {
	embedded, err := q.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings for query: %v", err)
	}

	limit := uint64(topK)
	result, err := q.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: q.collection,
		Query:          qdrant.NewQuery(embedded[0]...),
		Limit:          &limit,
		WithPayload: &qdrant.WithPayloadSelector{
			SelectorOptions: &qdrant.WithPayloadSelector_Enable{
				Enable: true,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search in Qdrant: %v", err)
	}

	matches := make([]Match, 0, len(result))
	for _, hit := range result {
		matches = append(matches, Match{
			RemedyID: hit.Payload["remedy_id"].GetStringValue(),
			Score:    float64(hit.Score),
		})
	}
	return matches, nil
}
