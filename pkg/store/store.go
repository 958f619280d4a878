package store

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("not found")

// RemedySelection is a saved recommendation run for one user.
type RemedySelection struct {
	ID              string    `json:"id" gorm:"primaryKey"`
	UserID          string    `json:"user_id" gorm:"index"`
	Symptoms        string    `json:"symptoms"`
	NLPMode         bool      `json:"nlp_mode"`
	Recommendations string    `json:"-" gorm:"column:recommendations"`
	Timestamp       time.Time `json:"timestamp"`
}

// SetRecommendations stores the recommendation payload as JSON.
func (s *RemedySelection) SetRecommendations(v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "encoding recommendations")
	}
	s.Recommendations = string(data)
	return nil
}

// RecommendationsJSON returns the raw recommendation payload for embedding
// into API responses.
func (s *RemedySelection) RecommendationsJSON() json.RawMessage {
	if s.Recommendations == "" {
		return json.RawMessage("null")
	}
	return json.RawMessage(s.Recommendations)
}

// KnowledgeSource is an admin-submitted document waiting for (or done
// with) knowledge base processing.
type KnowledgeSource struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	SourceType string    `json:"source_type"`
	Content    string    `json:"content"`
	SourceURL  string    `json:"source_url,omitempty"`
	Processed  bool      `json:"processed" gorm:"index"`
	Timestamp  time.Time `json:"timestamp"`
}

// Store persists selections and knowledge sources in SQLite.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database at path and migrates the schema.
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "opening database %s", path)
	}

	if err := db.AutoMigrate(&RemedySelection{}, &KnowledgeSource{}); err != nil {
		return nil, errors.Wrap(err, "migrating schema")
	}

	return &Store{db: db}, nil
}

// SaveSelection persists a selection, assigning ID and timestamp when
// absent.
func (s *Store) SaveSelection(sel *RemedySelection) error {
	if sel.ID == "" {
		sel.ID = uuid.New().String()
	}
	if sel.Timestamp.IsZero() {
		sel.Timestamp = time.Now().UTC()
	}
	return errors.Wrap(s.db.Create(sel).Error, "saving selection")
}

// ListSelections returns a user's selections, newest first.
func (s *Store) ListSelections(userID string, limit int) ([]RemedySelection, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []RemedySelection
	err := s.db.Where("user_id = ?", userID).
		Order("timestamp desc").
		Limit(limit).
		Find(&out).Error
	return out, errors.Wrap(err, "listing selections")
}

// GetSelection loads one selection by ID.
func (s *Store) GetSelection(id string) (*RemedySelection, error) {
	var sel RemedySelection
	err := s.db.First(&sel, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "loading selection")
	}
	return &sel, nil
}

// UpdateSelection rewrites a selection's symptoms and recommendations.
func (s *Store) UpdateSelection(id, symptoms, recommendations string) error {
	res := s.db.Model(&RemedySelection{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"symptoms":        symptoms,
			"recommendations": recommendations,
			"timestamp":       time.Now().UTC(),
		})
	if res.Error != nil {
		return errors.Wrap(res.Error, "updating selection")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SaveSource persists a knowledge source, assigning ID and timestamp when
// absent.
func (s *Store) SaveSource(src *KnowledgeSource) error {
	if src.ID == "" {
		src.ID = uuid.New().String()
	}
	if src.Timestamp.IsZero() {
		src.Timestamp = time.Now().UTC()
	}
	return errors.Wrap(s.db.Create(src).Error, "saving knowledge source")
}

// ListSources returns stored knowledge sources, newest first.
func (s *Store) ListSources(limit int) ([]KnowledgeSource, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []KnowledgeSource
	err := s.db.Order("timestamp desc").Limit(limit).Find(&out).Error
	return out, errors.Wrap(err, "listing knowledge sources")
}

// UnprocessedSources returns sources the rebuild has not consumed yet.
func (s *Store) UnprocessedSources(limit int) ([]KnowledgeSource, error) {
	if limit <= 0 {
		limit = 100
	}
	var out []KnowledgeSource
	err := s.db.Where("processed = ?", false).Limit(limit).Find(&out).Error
	return out, errors.Wrap(err, "listing unprocessed sources")
}

// MarkSourceProcessed flags a source as consumed by a rebuild.
func (s *Store) MarkSourceProcessed(id string) error {
	res := s.db.Model(&KnowledgeSource{}).Where("id = ?", id).Update("processed", true)
	if res.Error != nil {
		return errors.Wrap(res.Error, "marking source processed")
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
