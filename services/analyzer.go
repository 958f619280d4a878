package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/tidwall/gjson"

	"github.com/bloomlab/remedygraph/pkg/recommend"
	"github.com/bloomlab/remedygraph/pkg/source"
)

const analyzerSystemMessage = "You are an expert in Bach flower remedies. " +
	"Analyze symptoms and emotional states to recommend appropriate remedies " +
	"based on Dr. Bach's original 38 flower essences."

// LLMSymptomAnalyzer implements recommend.SymptomAnalyzer with a chat
// completion for keyword extraction and the local NLP processor for
// sentiment.
type LLMSymptomAnalyzer struct {
	client *openai.Client
	model  string
	nlp    *source.NLPProcessor
}

func NewLLMSymptomAnalyzer(client *openai.Client, model string) *LLMSymptomAnalyzer {
	if model == "" {
		model = openai.GPT4o
	}
	return &LLMSymptomAnalyzer{
		client: client,
		model:  model,
		nlp:    source.NewNLPProcessor(),
	}
}

// Analyze extracts emotional symptom keywords from free-form text. The LLM
// answers JSON; a malformed or failed response falls back to the original
// text so NLP mode never blocks a recommendation.
func (a *LLMSymptomAnalyzer) Analyze(ctx context.Context, text string) (*recommend.Analysis, error) {
	analysis := &recommend.Analysis{
		ExtractedSymptoms: text,
		OriginalText:      text,
	}

	if doc, err := a.nlp.Process(ctx, []byte(text), nil); err == nil {
		analysis.Polarity = doc.Sentiment.Polarity
		analysis.Subjectivity = doc.Sentiment.Subjectivity
	}

	if a.client == nil {
		return analysis, nil
	}

	prompt := fmt.Sprintf(`Analyze this text and extract emotional symptoms that relate to Bach flower remedies:

Text: %q

Identify the primary emotional state, key symptoms present, and underlying emotional patterns.
Respond with JSON of the form {"symptoms": "comma-separated symptom keywords"} and nothing else.`, text)

	resp, err := a.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: a.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analyzerSystemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to analyze symptoms: %v", err)
	}

	content := resp.Choices[0].Message.Content
	if extracted := gjson.Get(content, "symptoms").String(); extracted != "" {
		analysis.ExtractedSymptoms = extracted
	} else if trimmed := strings.TrimSpace(content); trimmed != "" {
		analysis.ExtractedSymptoms = trimmed
	}

	return analysis, nil
}
