package scoring

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jonathan/smarthire/internal/llm"
	"github.com/jonathan/smarthire/internal/prompts"
	"github.com/jonathan/smarthire/internal/types"
)

// FallbackFeedback is returned when no integer score could be extracted from
// the evaluator response.
const FallbackFeedback = "The evaluator response could not be scored automatically; no score was found in it."

var integerPattern = regexp.MustCompile(`\d+`)

// GenerativeEvalScorer sends the full transcript to the LLM collaborator and
// extracts the first integer in the reply as a score out of 10, which is then
// rescaled to the canonical 0-100 range.
//
// The first-integer extraction is deliberately lenient and lossy. The prompt
// asks for the score as the leading token, but any digits anywhere in the
// reply will be taken; treat the result as a rough signal, not ground truth.
type GenerativeEvalScorer struct {
	client llm.Client
	role   string
}

// NewGenerativeEvalScorer creates a scorer for the given role.
func NewGenerativeEvalScorer(client llm.Client, role string) *GenerativeEvalScorer {
	return &GenerativeEvalScorer{client: client, role: role}
}

// Score implements Scorer.
func (s *GenerativeEvalScorer) Score(ctx context.Context, questions []types.Question, answers []types.Answer) (float64, string, error) {
	if countsMismatch(questions, answers) {
		return 0, mismatchFeedback, nil
	}
	if len(questions) == 0 {
		return 0, "No questions were asked, so there is nothing to evaluate.", nil
	}

	prompt := prompts.Format(prompts.MustGet("interview.json", "evaluate-transcript"), map[string]string{
		"Role":       s.role,
		"Transcript": BuildTranscript(questions, answers),
	})

	response, err := s.client.GenerateContent(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return 0, "", &EvalError{Message: "model call failed", Cause: err}
	}

	raw, ok := extractScore(response)
	if !ok {
		return 0, FallbackFeedback, nil
	}

	return float64(raw) * 10, strings.TrimSpace(response), nil
}

// BuildTranscript concatenates the (question, answer) pairs into the
// evaluation prompt body.
func BuildTranscript(questions []types.Question, answers []types.Answer) string {
	var sb strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&sb, "Q%d: %s\n", i+1, q.Text)
		fmt.Fprintf(&sb, "A%d: %s\n", i+1, answers[i].Text)
	}
	return sb.String()
}

// extractScore finds the first integer token anywhere in the response and
// clamps it to [0, 10].
func extractScore(response string) (int, bool) {
	match := integerPattern.FindString(response)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0, false
	}
	if n > 10 {
		n = 10
	}
	return n, true
}
