package storage

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v4/neo4j"

	"github.com/bloomlab/remedygraph/pkg/graph"
	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// Neo4jStorage mirrors the remedy knowledge graph into Neo4j so admins can
// run Cypher against it. The in-memory graph stays authoritative; this is
// a write-through replica refreshed on rebuild.
type Neo4jStorage struct {
	driver  neo4j.Driver
	uri     string
	auth    neo4j.AuthToken
	session neo4j.Session
}

// NewNeo4jStorage creates a new Neo4j storage instance
func NewNeo4jStorage(uri, username, password string) (*Neo4jStorage, error) {
	auth := neo4j.BasicAuth(username, password, "")
	driver, err := neo4j.NewDriver(uri, auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create Neo4j driver: %v", err)
	}

	return &Neo4jStorage{
		driver: driver,
		uri:    uri,
		auth:   auth,
	}, nil
}

// Connect opens the working session.
func (s *Neo4jStorage) Connect(ctx context.Context) error {
	session := s.driver.NewSession(neo4j.SessionConfig{})
	s.session = session
	return nil
}

// Close releases the session and driver.
func (s *Neo4jStorage) Close() error {
	if s.session != nil {
		s.session.Close()
	}
	if s.driver != nil {
		return s.driver.Close()
	}
	return nil
}

// Sync replaces the mirrored graph with the given remedies and relations
// in a single write transaction.
func (s *Neo4jStorage) Sync(ctx context.Context, remedies []remedy.Remedy, relations []graph.Relation) error {
	session := s.driver.NewSession(neo4j.SessionConfig{})
	defer session.Close()

	_, err := session.WriteTransaction(func(tx neo4j.Transaction) (interface{}, error) {
		if _, err := tx.Run(`MATCH (r:Remedy) DETACH DELETE r`, nil); err != nil {
			return nil, err
		}

		for _, r := range remedies {
			params := map[string]interface{}{
				"id":             r.ID,
				"name":           r.Name,
				"category":       string(r.Category),
				"symptoms_count": len(r.Symptoms),
				"remedy_for":     r.RemedyFor,
			}

			_, err := tx.Run(`
				CREATE (r:Remedy {
					id: $id,
					name: $name,
					category: $category,
					symptoms_count: $symptoms_count,
					remedy_for: $remedy_for,
					updated_at: datetime()
				})
			`, params)
			if err != nil {
				return nil, err
			}
		}

		for _, rel := range relations {
			params := map[string]interface{}{
				"id":       rel.ID,
				"type":     rel.Type,
				"sourceID": rel.Source,
				"targetID": rel.Target,
				"weight":   rel.Weight,
			}

			_, err := tx.Run(`
				MATCH (from:Remedy {id: $sourceID})
				MATCH (to:Remedy {id: $targetID})
				CREATE (from)-[r:RELATES {
					id: $id,
					type: $type,
					weight: $weight,
					updated_at: datetime()
				}]->(to)
			`, params)
			if err != nil {
				return nil, err
			}
		}

		return nil, nil
	})

	return err
}

// RelatedRemedies returns the IDs of remedies linked to id, optionally
// restricted to one relation type.
func (s *Neo4jStorage) RelatedRemedies(ctx context.Context, id string, relationType string) ([]string, error) {
	var query string
	params := map[string]interface{}{"id": id}

	if relationType != "" {
		query = `
			MATCH (r:Remedy {id: $id})-[rel:RELATES {type: $type}]-(related:Remedy)
			RETURN related.id
		`
		params["type"] = relationType
	} else {
		query = `
			MATCH (r:Remedy {id: $id})-[rel:RELATES]-(related:Remedy)
			RETURN related.id
		`
	}

	result, err := s.session.Run(query, params)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0)
	for result.Next() {
		record := result.Record()
		ids = append(ids, record.Values[0].(string))
	}

	return ids, nil
}

// Query runs an arbitrary Cypher query and returns the raw records.
func (s *Neo4jStorage) Query(ctx context.Context, query string) ([]map[string]interface{}, error) {
	result, err := s.session.Run(query, nil)
	if err != nil {
		return nil, err
	}

	var results []map[string]interface{}
	for result.Next() {
		record := result.Record()
		data := make(map[string]interface{})
		for i, key := range record.Keys {
			data[key] = record.Values[i]
		}
		results = append(results, data)
	}

	return results, nil
}
