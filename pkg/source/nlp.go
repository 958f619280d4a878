package source

import (
	"context"
	"regexp"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/jdkato/prose/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/bloomlab/remedygraph/pkg/remedy"
)

var (
	processingDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "nlp_processing_duration_seconds",
			Help: "Time spent processing knowledge sources",
		},
		[]string{"processor_type"},
	)

	mentionCount = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "nlp_mentions_extracted_total",
			Help: "Number of symptom mentions extracted",
		},
		[]string{"category"},
	)
)

func init() {
	prometheus.MustRegister(processingDuration)
	prometheus.MustRegister(mentionCount)
}

// Symptom phrase patterns keyed to the remedy category their vocabulary
// points at. The lexicon follows the indications in the remedy catalog.
var symptomPatterns = map[string]remedy.Category{
	`(?i)(terror|panic|nightmare|phobia|dread|fright|afraid|frightened|fear of [a-z ]+)`:        remedy.CategoryFear,
	`(?i)(apprehension|foreboding|trembling|nervousness|anxious|anxiety)`:                       remedy.CategoryFear,
	`(?i)(indecision|indecisive|vacillation|hesitation|doubt|discouraged|pessimis\w+)`:          remedy.CategoryUncertainty,
	`(?i)(uncertain\w*|mood swings|lack of confidence|unclear goals|dissatisf\w+)`:              remedy.CategoryUncertainty,
	`(?i)(apathy|dreamy|absent-minded|daydream\w*|resignation|drift\w* through life)`:           remedy.CategoryInsufficientInterest,
	`(?i)(racing mind|persistent thoughts|nostalgia|living in the (past|future)|escapism)`:      remedy.CategoryInsufficientInterest,
	`(?i)(lonel\w+|aloof\w*|withdrawn|impatien\w+|talkative|self-absorbed)`:                     remedy.CategoryLoneliness,
	`(?i)(easily influenced|cannot say no|weak-willed|hides? worr\w+|inner torment|jealousy)`:   remedy.CategoryOversensitive,
	`(?i)(hatred|envy|suspicion|protection from change|transition)`:                             remedy.CategoryOversensitive,
	`(?i)(despair|hopeless\w*|guilt|self-blame|resentment|bitterness|exhaust\w+|overwhelm\w+)`:  remedy.CategoryDespondency,
	`(?i)(shock|trauma|grief|anguish|self-disgust|feeling unclean)`:                             remedy.CategoryDespondency,
	`(?i)(intoleran\w+|critical|judgmental|possessive\w*|controlling|domineering|tyrannical)`:   remedy.CategoryOvercare,
	`(?i)(over-enthusias\w+|fanatic\w+|rigid\w*|self-denial|strict principles|perfectionis\w+)`: remedy.CategoryOvercare,
	`(?i)(emergency|crisis|first aid|acute distress|extreme stress)`:                            remedy.CategoryEmergency,
}

// NLPProcessor does lexicon-driven NLP over knowledge source text using
// prose for tokenization and sentence splitting.
type NLPProcessor struct {
	logger *logrus.Logger
}

// NewNLPProcessor creates a new NLP processor
func NewNLPProcessor() *NLPProcessor {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	return &NLPProcessor{
		logger: logger,
	}
}

// Process implements the Processor interface.
func (p *NLPProcessor) Process(ctx context.Context, content []byte, metadata map[string]interface{}) (*Document, error) {
	timer := prometheus.NewTimer(processingDuration.WithLabelValues("nlp"))
	defer timer.ObserveDuration()

	p.logger.WithField("content_length", len(content)).Info("Starting NLP processing")

	doc, err := prose.NewDocument(string(content))
	if err != nil {
		p.logger.WithError(err).Error("Failed to create prose document")
		return nil, err
	}

	mentions := p.extractMentions(doc)
	keywords := p.extractKeywords(doc)
	sentiment := p.analyzeSentiment(doc)

	processed := &Document{
		Content:     string(content),
		Mentions:    mentions,
		Keywords:    keywords,
		Sentiment:   sentiment,
		Metadata:    metadata,
		ProcessedAt: time.Now(),
	}

	p.logger.WithFields(logrus.Fields{
		"mentions_count": len(mentions),
		"keywords_count": len(keywords),
		"polarity":       sentiment.Polarity,
	}).Info("NLP processing completed")

	return processed, nil
}

func (p *NLPProcessor) extractMentions(doc *prose.Document) []Mention {
	mentions := make([]Mention, 0)

	text := doc.Text
	for pattern, category := range symptomPatterns {
		matches := regexp.MustCompile(pattern).FindAllStringIndex(text, -1)
		for _, match := range matches {
			mention := Mention{
				Label:      strings.ToLower(text[match[0]:match[1]]),
				Category:   category,
				StartPos:   match[0],
				EndPos:     match[1],
				Confidence: 0.9,
			}
			mentions = append(mentions, mention)
			mentionCount.WithLabelValues(string(category)).Inc()
		}
	}

	return mentions
}

// analyzeSentiment scores the text against a small emotional lexicon.
// Polarity is (positive - negative) / scored tokens, subjectivity the
// share of tokens that carried any charge at all.
func (p *NLPProcessor) analyzeSentiment(doc *prose.Document) Sentiment {
	tokens := doc.Tokens()
	if len(tokens) == 0 {
		return Sentiment{}
	}

	positive, negative := 0, 0
	for _, tok := range tokens {
		word := strings.ToLower(tok.Text)
		if positiveWords.Contains(word) {
			positive++
		} else if negativeWords.Contains(word) {
			negative++
		}
	}

	charged := positive + negative
	s := Sentiment{
		Subjectivity: float64(charged) / float64(len(tokens)),
	}
	if charged > 0 {
		s.Polarity = float64(positive-negative) / float64(charged)
	}
	return s
}

func (p *NLPProcessor) extractKeywords(doc *prose.Document) []Keyword {
	tokens := doc.Tokens()
	sentences := doc.Sentences()

	// Create graph of word co-occurrences
	graphMap := make(map[string]map[string]float64)
	wordScores := make(map[string]float64)

	for _, tok := range tokens {
		if !p.isStopWord(tok.Text) && len(tok.Tag) > 0 && (tok.Tag[0] == 'N' || tok.Tag[0] == 'J') {
			graphMap[tok.Text] = make(map[string]float64)
			wordScores[tok.Text] = 1.0
		}
	}

	// Build co-occurrence graph
	window := 4
	for _, sent := range sentences {
		words := strings.Fields(sent.Text)
		for i, word := range words {
			if _, exists := graphMap[word]; !exists {
				continue
			}

			start := maxInt(0, i-window)
			end := minInt(len(words), i+window)

			for j := start; j < end; j++ {
				if i != j {
					coWord := words[j]
					if _, exists := graphMap[coWord]; exists {
						graphMap[word][coWord] += 1.0
						graphMap[coWord][word] += 1.0
					}
				}
			}
		}
	}

	// Run TextRank
	damping := 0.85
	epsilon := 0.0001
	maxIterations := 50

	for iter := 0; iter < maxIterations; iter++ {
		diff := 0.0
		newScores := make(map[string]float64)

		for word := range graphMap {
			sum := 0.0
			for other, weight := range graphMap[word] {
				total := p.sumEdgeWeights(graphMap[other])
				if total > 0 {
					sum += weight * wordScores[other] / total
				}
			}
			newScore := (1 - damping) + damping*sum
			diff += absFloat(newScore - wordScores[word])
			newScores[word] = newScore
		}

		if diff < epsilon {
			break
		}
		wordScores = newScores
	}

	// Boost terms from the emotional vocabulary so symptom words outrank
	// incidental nouns.
	emotionalTermBoost := 1.5
	for word, score := range wordScores {
		if emotionalTerms.Contains(strings.ToLower(word)) {
			wordScores[word] = score * emotionalTermBoost
		}
	}

	keywords := make([]Keyword, 0)
	for word, score := range wordScores {
		startPos := strings.Index(doc.Text, word)
		if startPos >= 0 {
			keywords = append(keywords, Keyword{
				Text:     word,
				Score:    score,
				StartPos: startPos,
				EndPos:   startPos + len(word),
			})
		}
	}

	sort.Slice(keywords, func(i, j int) bool {
		return keywords[i].Score > keywords[j].Score
	})

	maxKeywords := 10
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}

	return keywords
}

// SupportedTypes implements the Processor interface.
func (p *NLPProcessor) SupportedTypes() []string {
	return []string{"text/plain", "text/markdown"}
}

func (p *NLPProcessor) isStopWord(word string) bool {
	return stopWords.Contains(strings.ToLower(word))
}

func (p *NLPProcessor) sumEdgeWeights(edges map[string]float64) float64 {
	sum := 0.0
	for _, weight := range edges {
		sum += weight
	}
	return sum
}

var (
	stopWords = mapset.NewSet[string]("the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for", "of", "with", "by", "is", "are", "was", "be")

	positiveWords = mapset.NewSet[string](
		"calm", "peaceful", "hopeful", "confident", "cheerful", "happy",
		"relaxed", "content", "joyful", "balanced", "serene", "comforted",
		"better", "stronger", "optimistic", "grateful",
	)

	negativeWords = mapset.NewSet[string](
		"afraid", "anxious", "worried", "terrified", "panicked", "hopeless",
		"despairing", "exhausted", "overwhelmed", "bitter", "resentful",
		"lonely", "guilty", "ashamed", "restless", "tormented", "fearful",
		"desperate", "sad", "miserable", "apathetic", "irritable",
	)

	emotionalTerms = mapset.NewSet[string](
		"fear", "anxiety", "worry", "panic", "terror", "despair", "grief",
		"shock", "trauma", "guilt", "resentment", "bitterness", "apathy",
		"loneliness", "impatience", "intolerance", "indecision", "doubt",
		"exhaustion", "hopelessness", "restlessness", "sadness",
	)
)

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
