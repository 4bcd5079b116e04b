// Package answers accumulates one answer per interview question, in order.
package answers

import (
	"fmt"

	"github.com/jonathan/smarthire/internal/types"
)

// ErrIndexOutOfRange indicates a record call for a question that does not exist.
type ErrIndexOutOfRange struct {
	Index int
	Count int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("answer index %d out of range for %d questions", e.Index, e.Count)
}

// Collector stores answers aligned 1:1 with the question sequence.
// Every slot exists from construction; a question the candidate skipped keeps
// its empty-string answer. Downstream scoring treats empty text as "no
// coverage", never as an error.
type Collector struct {
	texts []string
}

// NewCollector creates a Collector sized for questionCount questions.
func NewCollector(questionCount int) *Collector {
	return &Collector{texts: make([]string, questionCount)}
}

// Record stores the answer for the question at index. Recording twice for the
// same index overwrites: last write wins.
func (c *Collector) Record(index int, text string) error {
	if index < 0 || index >= len(c.texts) {
		return &ErrIndexOutOfRange{Index: index, Count: len(c.texts)}
	}
	c.texts[index] = text
	return nil
}

// All returns the ordered answers, one per question.
func (c *Collector) All() []types.Answer {
	out := make([]types.Answer, len(c.texts))
	for i, text := range c.texts {
		out[i] = types.Answer{QuestionIndex: i, Text: text}
	}
	return out
}

// Answered counts the non-empty answers recorded so far.
func (c *Collector) Answered() int {
	n := 0
	for _, text := range c.texts {
		if text != "" {
			n++
		}
	}
	return n
}

// Len returns the number of answer slots.
func (c *Collector) Len() int {
	return len(c.texts)
}
