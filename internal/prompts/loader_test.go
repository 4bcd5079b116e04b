package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, key := range []string{"generate-questions", "generate-questions-plain", "evaluate-transcript"} {
		prompt, err := Get("interview.json", key)
		require.NoError(t, err, "prompt %s should load", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("interview.json", "does-not-exist")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nope.json", "generate-questions")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	template := MustGet("interview.json", "evaluate-transcript")
	out := Format(template, map[string]string{
		"Role":       "Tester",
		"Transcript": "Q: one\nA: two",
	})

	assert.True(t, strings.Contains(out, "Tester"))
	assert.True(t, strings.Contains(out, "Q: one"))
	assert.False(t, strings.Contains(out, "{{.Role}}"))
}
