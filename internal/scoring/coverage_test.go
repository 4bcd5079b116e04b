package scoring

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoverageFeedback_ShortAnswer(t *testing.T) {
	got := CoverageFeedback("too short", 1.0)
	assert.Contains(t, got, "quite short")
	assert.Contains(t, got, "covered most")
}

func TestCoverageFeedback_IdealLength(t *testing.T) {
	answer := strings.Repeat("word ", 80)
	got := CoverageFeedback(answer, 0.5)
	assert.Contains(t, got, "ideal")
	assert.Contains(t, got, "covered some")
}

func TestCoverageFeedback_Verbose(t *testing.T) {
	answer := strings.Repeat("word ", 200)
	got := CoverageFeedback(answer, 0.1)
	assert.Contains(t, got, "verbose")
	assert.Contains(t, got, "missed most")
}

func TestCoverageFeedback_Boundaries(t *testing.T) {
	thirty := strings.Repeat("w ", 30)
	assert.Contains(t, CoverageFeedback(thirty, 0), "ideal")

	oneFifty := strings.Repeat("w ", 150)
	assert.Contains(t, CoverageFeedback(oneFifty, 0), "ideal")

	oneFiftyOne := strings.Repeat("w ", 151)
	assert.Contains(t, CoverageFeedback(oneFiftyOne, 0), "verbose")
}
