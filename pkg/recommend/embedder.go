package recommend

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Embedder turns symptom text into vectors for similarity search.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
	ModelName() string
	Dimensions() uint64
}

var embeddingModelDimensions = map[openai.EmbeddingModel]uint64{
	openai.AdaEmbeddingV2:  1536,
	openai.SmallEmbedding3: 1536,
	openai.LargeEmbedding3: 3072,
	"baai/bge-base-en":     768,
	"baai/bge-large-en":    1024,
}

func validateEmbeddingModel(modelStr string) (openai.EmbeddingModel, uint64, error) {
	model := openai.EmbeddingModel(modelStr)
	if dimensions, ok := embeddingModelDimensions[model]; ok {
		return model, dimensions, nil
	}
	return "", 0, fmt.Errorf("unsupported embedding model: %s. Supported models: %s",
		modelStr,
		"text-embedding-ada-002, text-embedding-3-small, text-embedding-3-large, baai/bge-base-en, baai/bge-large-en")
}

// OpenAIEmbedder embeds through an OpenAI-compatible API.
type OpenAIEmbedder struct {
	client *openai.Client
	model  openai.EmbeddingModel
	dims   uint64
}

// NewOpenAIEmbedder validates the model name and wires the client.
func NewOpenAIEmbedder(client *openai.Client, modelStr string) (*OpenAIEmbedder, error) {
	model, dims, err := validateEmbeddingModel(modelStr)
	if err != nil {
		return nil, err
	}
	return &OpenAIEmbedder{client: client, model: model, dims: dims}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: e.model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %v", err)
	}

	out := make([][]float32, len(resp.Data))
	for i, d := range resp.Data {
		out[i] = d.Embedding
	}
	return out, nil
}

func (e *OpenAIEmbedder) ModelName() string  { return string(e.model) }
func (e *OpenAIEmbedder) Dimensions() uint64 { return e.dims }

// HashingEmbedder is a deterministic feature-hashing embedder used when no
// embedding API is configured. Cosine similarity over hashed bag-of-words
// still ranks overlapping symptom texts first, which is all the offline
// mode needs.
type HashingEmbedder struct {
	dims uint64
}

func NewHashingEmbedder(dims uint64) *HashingEmbedder {
	if dims == 0 {
		dims = 384
	}
	return &HashingEmbedder{dims: dims}
}

func (e *HashingEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		vec := make([]float32, e.dims)
		for _, word := range strings.Fields(strings.ToLower(text)) {
			word = strings.Trim(word, ".,;:!?\"'()")
			if word == "" {
				continue
			}
			h := fnv.New64a()
			h.Write([]byte(word))
			sum := h.Sum64()
			bucket := sum % e.dims
			// Half the hash space contributes negatively so vectors
			// spread over the whole sphere instead of one orthant.
			sign := float32(1)
			if sum&(1<<63) != 0 {
				sign = -1
			}
			vec[bucket] += sign
		}

		var norm float64
		for _, v := range vec {
			norm += float64(v) * float64(v)
		}
		if norm > 0 {
			scale := float32(1 / math.Sqrt(norm))
			for j := range vec {
				vec[j] *= scale
			}
		}
		out[i] = vec
	}
	return out, nil
}

func (e *HashingEmbedder) ModelName() string  { return "feature-hashing" }
func (e *HashingEmbedder) Dimensions() uint64 { return e.dims }
