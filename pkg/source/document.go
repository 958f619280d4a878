package source

import (
	"context"
	"time"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

// Knowledge source types accepted by the admin API.
const (
	TypeWeb  = "web"
	TypePDF  = "pdf"
	TypeText = "text"
)

// Document is a knowledge source after processing: the plain-text content
// plus what the NLP pass extracted from it.
type Document struct {
	ID          string                 `json:"id"`
	Content     string                 `json:"content"`
	Mentions    []Mention              `json:"mentions"`
	Keywords    []Keyword              `json:"keywords"`
	Sentiment   Sentiment              `json:"sentiment"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
	ProcessedAt time.Time              `json:"processed_at"`
}

// Mention is an emotional-symptom phrase found in the text, tagged with
// the remedy category its lexicon pattern belongs to.
type Mention struct {
	Label      string          `json:"label"`
	Category   remedy.Category `json:"category"`
	StartPos   int             `json:"start_pos"`
	EndPos     int             `json:"end_pos"`
	Confidence float64         `json:"confidence"`
}

// Keyword is an extracted keyword with its TextRank relevance score.
type Keyword struct {
	Text     string  `json:"text"`
	Score    float64 `json:"score"`
	StartPos int     `json:"start_pos"`
	EndPos   int     `json:"end_pos"`
}

// Sentiment is a lexicon-derived estimate of the text's emotional tone.
// Polarity is in [-1, 1], Subjectivity in [0, 1].
type Sentiment struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// Processor turns raw source bytes into a processed Document.
type Processor interface {
	Process(ctx context.Context, content []byte, metadata map[string]interface{}) (*Document, error)
	SupportedTypes() []string
}
