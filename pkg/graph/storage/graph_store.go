package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/bloomlab/remedygraph/pkg/graph"
)

// GraphStore persists knowledge-graph snapshots.
type GraphStore interface {
	// StoreGraph persists a snapshot.
	StoreGraph(ctx context.Context, snap *graph.Snapshot) error

	// LoadGraph loads the last stored snapshot.
	LoadGraph(ctx context.Context) (*graph.Snapshot, error)
}

// JSONGraphStore implements GraphStore using a JSON file. The rebuild CLI
// writes the artifact here so admins can diff successive rebuilds.
type JSONGraphStore struct {
	filePath string
}

// NewJSONGraphStore creates a new JSON graph store
func NewJSONGraphStore(filePath string) *JSONGraphStore {
	return &JSONGraphStore{
		filePath: filePath,
	}
}

// StoreGraph stores the snapshot as indented JSON.
func (s *JSONGraphStore) StoreGraph(ctx context.Context, snap *graph.Snapshot) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0644)
}

// LoadGraph loads a snapshot from the JSON file.
func (s *JSONGraphStore) LoadGraph(ctx context.Context) (*graph.Snapshot, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		return nil, err
	}

	var snap graph.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, err
	}

	return &snap, nil
}
