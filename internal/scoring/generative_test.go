package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smarthire/internal/llm"
	"github.com/jonathan/smarthire/internal/types"
)

type stubClient struct {
	response string
	err      error
	prompt   string
}

func (c *stubClient) GenerateContent(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	c.prompt = prompt
	return c.response, c.err
}

func (c *stubClient) GenerateJSON(_ context.Context, prompt string, _ llm.ModelTier) (string, error) {
	return c.response, c.err
}

func (c *stubClient) Close() error { return nil }

func evalFixture() ([]types.Question, []types.Answer) {
	questions := []types.Question{
		{Text: "Why do you want the role?", ExpectedKeywords: []string{"motivation"}},
		{Text: "Describe a recent project.", ExpectedKeywords: []string{"project"}},
	}
	answers := []types.Answer{
		{QuestionIndex: 0, Text: "I enjoy the domain."},
		{QuestionIndex: 1, Text: "I built a search service."},
	}
	return questions, answers
}

func TestGenerativeEvalScorer_RescalesToHundred(t *testing.T) {
	client := &stubClient{response: "7\nStrong answers overall, with room to quantify impact."}
	questions, answers := evalFixture()

	score, feedback, err := NewGenerativeEvalScorer(client, "Backend Engineer").Score(context.Background(), questions, answers)
	require.NoError(t, err)
	assert.Equal(t, 70.0, score)
	assert.Contains(t, feedback, "Strong answers")
	assert.Contains(t, client.prompt, "Backend Engineer")
	assert.Contains(t, client.prompt, "Q1:")
	assert.Contains(t, client.prompt, "I built a search service.")
}

func TestGenerativeEvalScorer_FirstIntegerWins(t *testing.T) {
	client := &stubClient{response: "I would rate this 8 out of 10."}
	questions, answers := evalFixture()

	score, _, err := NewGenerativeEvalScorer(client, "Tester").Score(context.Background(), questions, answers)
	require.NoError(t, err)
	assert.Equal(t, 80.0, score)
}

func TestGenerativeEvalScorer_ClampsAboveTen(t *testing.T) {
	client := &stubClient{response: "95 percent, excellent."}
	questions, answers := evalFixture()

	score, _, err := NewGenerativeEvalScorer(client, "Tester").Score(context.Background(), questions, answers)
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)
}

func TestGenerativeEvalScorer_NoDigits(t *testing.T) {
	client := &stubClient{response: "Excellent performance, truly impressive."}
	questions, answers := evalFixture()

	score, feedback, err := NewGenerativeEvalScorer(client, "Tester").Score(context.Background(), questions, answers)
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Equal(t, FallbackFeedback, feedback)
}

func TestGenerativeEvalScorer_ModelError(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	questions, answers := evalFixture()

	_, _, err := NewGenerativeEvalScorer(client, "Tester").Score(context.Background(), questions, answers)
	require.Error(t, err)
	var evalErr *EvalError
	assert.ErrorAs(t, err, &evalErr)
}

// A model outage must cost the candidate a score, never the report.
func TestScoreSafe_DegradesOnModelError(t *testing.T) {
	client := &stubClient{err: errors.New("quota exceeded")}
	questions, answers := evalFixture()

	score, feedback := ScoreSafe(context.Background(), NewGenerativeEvalScorer(client, "Tester"), questions, answers)
	assert.Zero(t, score)
	assert.Equal(t, ScoreUnavailableFeedback, feedback)
}

func TestScoreSafe_PassesThroughOnSuccess(t *testing.T) {
	client := &stubClient{response: "7\nSolid answers."}
	questions, answers := evalFixture()

	score, feedback := ScoreSafe(context.Background(), NewGenerativeEvalScorer(client, "Tester"), questions, answers)
	assert.Equal(t, 70.0, score)
	assert.Contains(t, feedback, "Solid answers")
}

func TestGenerativeEvalScorer_CountMismatch(t *testing.T) {
	client := &stubClient{response: "9"}
	questions, _ := evalFixture()

	score, feedback, err := NewGenerativeEvalScorer(client, "Tester").Score(context.Background(), questions, nil)
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Equal(t, mismatchFeedback, feedback)
	assert.Empty(t, client.prompt)
}

func TestBuildTranscript(t *testing.T) {
	questions, answers := evalFixture()
	transcript := BuildTranscript(questions, answers)
	assert.Contains(t, transcript, "Q1: Why do you want the role?")
	assert.Contains(t, transcript, "A2: I built a search service.")
}
