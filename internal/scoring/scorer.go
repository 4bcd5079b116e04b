// Package scoring computes a numeric score and narrative feedback from the
// (question, answer) pairs of a finished interview.
//
// Two interchangeable strategies exist behind the Scorer interface. The
// canonical score scale is 0-100: the keyword-coverage scorer is native to
// it, and the generative evaluator's 0-10 result is rescaled before it leaves
// this package.
package scoring

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/smarthire/internal/types"
)

// Strategy selects the scoring approach.
type Strategy string

const (
	// StrategyKeywordCoverage counts expected keywords found in answers.
	StrategyKeywordCoverage Strategy = "keyword_coverage"
	// StrategyGenerativeEval asks the LLM collaborator to grade the transcript.
	StrategyGenerativeEval Strategy = "generative_eval"
)

// Scorer grades an interview. Implementations must return a defined result
// for degenerate input (zero questions, zero keywords) rather than failing.
type Scorer interface {
	Score(ctx context.Context, questions []types.Question, answers []types.Answer) (float64, string, error)
}

// mismatchFeedback is the defined result when question and answer counts
// disagree. Scoring proceeds with score 0 instead of crashing.
const mismatchFeedback = "Interview could not be scored: answer count does not match question count."

func countsMismatch(questions []types.Question, answers []types.Answer) bool {
	return len(questions) != len(answers)
}

// ScoreUnavailableFeedback is the defined result when the scorer itself
// failed. The interview still ends with a report; the score is just 0.
const ScoreUnavailableFeedback = "Automatic scoring was unavailable for this interview, so a default score of 0 was recorded."

// ScoreSafe runs the scorer and converts any failure into the degraded
// default of score 0. The session pipeline never aborts because scoring
// failed; the report is still produced.
func ScoreSafe(ctx context.Context, scorer Scorer, questions []types.Question, answers []types.Answer) (float64, string) {
	score, feedback, err := scorer.Score(ctx, questions, answers)
	if err != nil {
		log.Printf("[scoring] degrading after scorer failure: %v", err)
		return 0, ScoreUnavailableFeedback
	}
	return score, feedback
}

// EvalError represents a failure inside the generative evaluator call.
type EvalError struct {
	Message string
	Cause   error
}

func (e *EvalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("transcript evaluation failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("transcript evaluation failed: %s", e.Message)
}

func (e *EvalError) Unwrap() error {
	return e.Cause
}
