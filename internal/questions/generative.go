package questions

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/smarthire/internal/llm"
	"github.com/jonathan/smarthire/internal/prompts"
	"github.com/jonathan/smarthire/internal/types"
)

// questionSetSchema validates the structured LLM response. Structured output
// is the primary path; the line-split heuristic below is only a fallback.
const questionSetSchema = `{
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "required": ["text"],
    "properties": {
      "text": {"type": "string", "minLength": 1},
      "expected_keywords": {
        "type": "array",
        "items": {"type": "string"}
      }
    }
  }
}`

// GenerativeSource asks the LLM collaborator for tailored questions.
type GenerativeSource struct {
	client          llm.Client
	technicalCount  int
	behavioralCount int
	maxQuestions    int
}

// NewGenerativeSource creates a GenerativeSource. maxQuestions caps the final
// list; counts shape the prompt.
func NewGenerativeSource(client llm.Client, technicalCount, behavioralCount, maxQuestions int) *GenerativeSource {
	if maxQuestions <= 0 {
		maxQuestions = 5
	}
	return &GenerativeSource{
		client:          client,
		technicalCount:  technicalCount,
		behavioralCount: behavioralCount,
		maxQuestions:    maxQuestions,
	}
}

// Generate requests schema-valid JSON questions first and falls back to
// lenient line parsing of a plain-text response. Both paths cap the list and
// guarantee every question carries expected keywords.
func (s *GenerativeSource) Generate(ctx context.Context, role string, profile *types.ResumeProfile) ([]types.Question, error) {
	data := map[string]string{
		"Role":            role,
		"Skills":          strings.Join(profile.Skills, ", "),
		"TechnicalCount":  fmt.Sprintf("%d", s.technicalCount),
		"BehavioralCount": fmt.Sprintf("%d", s.behavioralCount),
	}

	// Primary path: structured JSON output validated against the schema.
	jsonPrompt := prompts.Format(prompts.MustGet("interview.json", "generate-questions"), data)
	raw, err := s.client.GenerateJSON(ctx, jsonPrompt, llm.TierStandard)
	if err == nil {
		if qs, parseErr := parseStructured(raw); parseErr == nil {
			return s.finalize(qs), nil
		}
	}

	// Fallback: free-form text, one question per line.
	plainPrompt := prompts.Format(prompts.MustGet("interview.json", "generate-questions-plain"), data)
	text, err := s.client.GenerateContent(ctx, plainPrompt, llm.TierStandard)
	if err != nil {
		return nil, &GenerationError{Strategy: StrategyGenerative, Message: "model call failed", Cause: err}
	}

	qs := parseLines(text)
	if len(qs) == 0 {
		return nil, &GenerationError{Strategy: StrategyGenerative, Message: "model returned no usable questions"}
	}
	return s.finalize(qs), nil
}

// finalize caps the list and fills missing keywords from the question text.
func (s *GenerativeSource) finalize(qs []types.Question) []types.Question {
	if len(qs) > s.maxQuestions {
		qs = qs[:s.maxQuestions]
	}
	for i := range qs {
		if len(qs[i].ExpectedKeywords) == 0 {
			qs[i].ExpectedKeywords = TokenizeKeywords(qs[i].Text)
		}
	}
	return qs
}

// parseStructured validates raw against the question set schema and decodes it.
func parseStructured(raw string) ([]types.Question, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(questionSetSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("schema validation errored: %w", err)
	}
	if !result.Valid() {
		descs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			descs = append(descs, e.String())
		}
		return nil, fmt.Errorf("response does not match question schema: %s", strings.Join(descs, "; "))
	}

	var qs []types.Question
	if err := json.Unmarshal([]byte(raw), &qs); err != nil {
		return nil, fmt.Errorf("failed to decode questions: %w", err)
	}
	return qs, nil
}

var enumerationPrefix = regexp.MustCompile(`^\s*(?:[-*•]|\(?\d+[.)]?|Q\d+[:.]?)\s*`)

// parseLines splits free-form model output into questions: one per line,
// leading enumeration and markup stripped, blanks discarded.
func parseLines(text string) []types.Question {
	var qs []types.Question
	for _, line := range strings.Split(text, "\n") {
		line = enumerationPrefix.ReplaceAllString(line, "")
		line = strings.Trim(line, "*_` ")
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		qs = append(qs, types.Question{Text: line})
	}
	return qs
}
