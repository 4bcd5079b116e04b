package observability

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/smarthire/internal/types"
)

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&types.ResumeProfile{
		Name:   "John Doe",
		Email:  "john@example.com",
		Skills: []string{"go", "python", "docker"},
	})

	out := buf.String()
	assert.Contains(t, out, "EXTRACTED PROFILE")
	assert.Contains(t, out, "John Doe")
	assert.Contains(t, out, "go")
}

func TestPrintProfile_NilIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestPrintQuestion(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintQuestion(1, 3, types.Question{Text: "Tell me about a project."})

	out := buf.String()
	assert.Contains(t, out, "QUESTION 2 OF 3")
	assert.Contains(t, out, "Tell me about a project.")
}

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintReport(&types.InterviewReport{
		CandidateName: "Jane",
		Role:          "Tester",
		Score:         66.67,
		FeedbackText:  "Good coverage.",
		CreatedAt:     time.Now(),
	}, "Your skills matched 50% of what this role's questions typically probe.")

	out := buf.String()
	assert.Contains(t, out, "INTERVIEW REPORT")
	assert.Contains(t, out, "66.67")
	assert.Contains(t, out, "matched 50%")
}

func TestPrintJobs(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobs([]types.JobPosting{
		{Title: "Senior Tester", Company: "Acme", Location: "Remote", Link: "https://example.com"},
	})

	out := buf.String()
	assert.Contains(t, out, "RECOMMENDED JOBS")
	assert.Contains(t, out, "Senior Tester")
}

func TestPrintJobs_EmptyIsSilent(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintJobs(nil)
	assert.Empty(t, buf.String())
}
