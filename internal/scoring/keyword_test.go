package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smarthire/internal/types"
)

func TestKeywordCoverageScorer_PartialCoverage(t *testing.T) {
	questions := []types.Question{
		{Text: "Describe your responsibilities.", ExpectedKeywords: []string{"responsibilities"}},
		{Text: "What trends do you follow?", ExpectedKeywords: []string{"trends"}},
		{Text: "Tell me about a project.", ExpectedKeywords: []string{"project"}},
	}
	answers := []types.Answer{
		{QuestionIndex: 0, Text: "I handle responsibilities well"},
		{QuestionIndex: 1, Text: "I don't know"},
		{QuestionIndex: 2, Text: "I did a project"},
	}

	score, feedback, err := NewKeywordCoverageScorer().Score(context.Background(), questions, answers)
	require.NoError(t, err)
	assert.Equal(t, 66.67, score)
	assert.NotEmpty(t, feedback)
}

func TestKeywordCoverageScorer_CaseInsensitive(t *testing.T) {
	questions := []types.Question{
		{Text: "q", ExpectedKeywords: []string{"Docker", "kubernetes"}},
	}
	answers := []types.Answer{
		{QuestionIndex: 0, Text: "I used docker and KUBERNETES in production"},
	}

	score, _, err := NewKeywordCoverageScorer().Score(context.Background(), questions, answers)
	require.NoError(t, err)
	assert.Equal(t, 100.0, score)
}

func TestKeywordCoverageScorer_NoKeywords(t *testing.T) {
	questions := []types.Question{{Text: "q"}}
	answers := []types.Answer{{QuestionIndex: 0, Text: "anything"}}

	score, feedback, err := NewKeywordCoverageScorer().Score(context.Background(), questions, answers)
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Contains(t, feedback, "No expected keywords")
}

func TestKeywordCoverageScorer_CountMismatch(t *testing.T) {
	questions := []types.Question{{Text: "q", ExpectedKeywords: []string{"go"}}}

	score, feedback, err := NewKeywordCoverageScorer().Score(context.Background(), questions, nil)
	require.NoError(t, err)
	assert.Zero(t, score)
	assert.Equal(t, mismatchFeedback, feedback)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 66.67, Round2(200.0/3.0))
	assert.Equal(t, 0.0, Round2(0))
	assert.Equal(t, 100.0, Round2(100))
}
