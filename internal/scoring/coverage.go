package scoring

import "strings"

// Per-answer feedback is a deterministic rule table, not a model call.
// Two independent classifications are concatenated: answer length in words,
// and keyword coverage fraction.

type lengthBand struct {
	maxWords int // inclusive upper bound; -1 means unbounded
	message  string
}

type coverageBand struct {
	min     float64 // inclusive lower bound
	message string
}

// lengthBands classify word count: short below 30, ideal up to 150, verbose above.
var lengthBands = []lengthBand{
	{maxWords: 29, message: "Your answer was quite short; aim for more detail."},
	{maxWords: 150, message: "Your answer length was ideal."},
	{maxWords: -1, message: "Your answer was verbose; try to be more concise."},
}

// coverageBands classify keyword coverage: most above 0.7, some from 0.4, missed below.
var coverageBands = []coverageBand{
	{min: 0.7, message: "You covered most of the expected points."},
	{min: 0.4, message: "You covered some of the expected points."},
	{min: 0.0, message: "You missed most of the expected points."},
}

// CoverageFeedback returns the canned sentence pair for one answer.
func CoverageFeedback(answer string, coverage float64) string {
	words := len(strings.Fields(answer))

	var lengthMsg string
	for _, band := range lengthBands {
		if band.maxWords < 0 || words <= band.maxWords {
			lengthMsg = band.message
			break
		}
	}

	var coverageMsg string
	for _, band := range coverageBands {
		if coverage >= band.min {
			coverageMsg = band.message
			break
		}
	}

	return lengthMsg + " " + coverageMsg
}
