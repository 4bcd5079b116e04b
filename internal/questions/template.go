package questions

import (
	"context"
	"fmt"

	"github.com/jonathan/smarthire/internal/types"
)

// questionTemplates are the fixed screening templates. Each carries the single
// literal keyword embedded in its clause that a covering answer must mention.
var questionTemplates = []struct {
	format  string
	keyword string
}{
	{"What are the key responsibilities of a %s?", "responsibilities"},
	{"How do you stay updated with trends in %s?", "trends"},
	{"Explain a project where you demonstrated %s-related skills.", "project"},
}

// TemplateSource deterministically fills the fixed templates with the role
// name. It always produces exactly three questions and never fails.
type TemplateSource struct{}

// NewTemplateSource creates a TemplateSource.
func NewTemplateSource() *TemplateSource {
	return &TemplateSource{}
}

// Generate returns the three template questions for the role.
func (s *TemplateSource) Generate(_ context.Context, role string, _ *types.ResumeProfile) ([]types.Question, error) {
	qs := make([]types.Question, 0, len(questionTemplates))
	for _, tmpl := range questionTemplates {
		qs = append(qs, types.Question{
			Text:             fmt.Sprintf(tmpl.format, role),
			ExpectedKeywords: []string{tmpl.keyword},
		})
	}
	return qs, nil
}
