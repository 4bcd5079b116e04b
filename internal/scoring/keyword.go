package scoring

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/smarthire/internal/types"
)

// KeywordCoverageScorer counts, per question, how many of its expected
// keywords appear case-insensitively as substrings of the answer text.
// Score = round(100 * matched / total_keywords, 2); defined as 0 when there
// are no keywords at all.
type KeywordCoverageScorer struct{}

// NewKeywordCoverageScorer creates a KeywordCoverageScorer.
func NewKeywordCoverageScorer() *KeywordCoverageScorer {
	return &KeywordCoverageScorer{}
}

// Score implements Scorer.
func (s *KeywordCoverageScorer) Score(_ context.Context, questions []types.Question, answers []types.Answer) (float64, string, error) {
	if countsMismatch(questions, answers) {
		return 0, mismatchFeedback, nil
	}

	matched, total := 0, 0
	feedback := make([]string, 0, len(questions))

	for i, q := range questions {
		answer := answers[i].Text
		hit := 0
		for _, kw := range q.ExpectedKeywords {
			total++
			if kw != "" && strings.Contains(strings.ToLower(answer), strings.ToLower(kw)) {
				matched++
				hit++
			}
		}

		coverage := 0.0
		if len(q.ExpectedKeywords) > 0 {
			coverage = float64(hit) / float64(len(q.ExpectedKeywords))
		}
		feedback = append(feedback, CoverageFeedback(answer, coverage))
	}

	if total == 0 {
		return 0, "No expected keywords were available, so keyword coverage is 0.", nil
	}

	score := Round2(100 * float64(matched) / float64(total))
	return score, strings.Join(feedback, " "), nil
}

// Round2 rounds to two decimal places, matching the report's score precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
