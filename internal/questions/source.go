// Package questions generates the ordered interview question set for a role.
// Three interchangeable strategies are provided: fixed templates, a
// pre-authored per-role bank, and LLM generation.
package questions

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/jonathan/smarthire/internal/types"
)

// Strategy selects the question generation approach.
type Strategy string

const (
	// StrategyTemplate fills fixed question templates with the role name.
	StrategyTemplate Strategy = "template"
	// StrategyStaticBank looks questions up in a pre-loaded per-role bank.
	StrategyStaticBank Strategy = "static_bank"
	// StrategyGenerative asks the LLM collaborator for tailored questions.
	StrategyGenerative Strategy = "generative"
)

// Source produces the ordered question set for a session.
type Source interface {
	Generate(ctx context.Context, role string, profile *types.ResumeProfile) ([]types.Question, error)
}

// GenerationError represents a failure inside a question source.
type GenerationError struct {
	Strategy Strategy
	Message  string
	Cause    error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("question generation (%s) failed: %s: %v", e.Strategy, e.Message, e.Cause)
	}
	return fmt.Sprintf("question generation (%s) failed: %s", e.Strategy, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// GenerateSafe runs src and converts any failure into the degraded single
// diagnostic question. The session pipeline never aborts because question
// generation failed; an empty result from the static bank is passed through
// unchanged because an empty-question session is valid.
func GenerateSafe(ctx context.Context, src Source, role string, profile *types.ResumeProfile) []types.Question {
	qs, err := src.Generate(ctx, role, profile)
	if err != nil {
		log.Printf("[questions] degrading after generation failure: %v", err)
		return []types.Question{DiagnosticQuestion(role)}
	}
	return qs
}

// DiagnosticQuestion is the single fallback question used when a source could
// not produce a usable list.
func DiagnosticQuestion(role string) types.Question {
	text := fmt.Sprintf("We could not prepare tailored questions. Describe your most relevant experience for the %s role.", role)
	return types.Question{
		Text:             text,
		ExpectedKeywords: TokenizeKeywords(text),
	}
}

var wordPattern = regexp.MustCompile(`[A-Za-z]+`)

// keywordStopwords are common words excluded from derived keywords.
var keywordStopwords = map[string]struct{}{
	"about": {}, "could": {}, "describe": {}, "experience": {}, "tailored": {},
	"their": {}, "there": {}, "these": {}, "questions": {}, "prepare": {},
	"would": {}, "which": {}, "where": {}, "while": {}, "your": {}, "with": {},
}

// TokenizeKeywords derives expected keywords from the wording of a question
// when no external keyword source exists: regex word extraction, lowercased,
// stopwords removed, capped at four.
func TokenizeKeywords(text string) []string {
	words := wordPattern.FindAllString(text, -1)
	seen := make(map[string]struct{})
	keywords := make([]string, 0, 4)

	for _, w := range words {
		w = strings.ToLower(w)
		if len(w) < 5 {
			continue
		}
		if _, stop := keywordStopwords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
		if len(keywords) == 4 {
			break
		}
	}
	return keywords
}
