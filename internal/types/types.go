// Package types provides type definitions for structured data used throughout the interview service.
package types

import (
	"time"
)

// UnknownEmail is the sentinel value used when no address could be extracted
// from a resume. A profile always carries either a plausible address or this.
const UnknownEmail = "unknown"

// ResumeProfile holds the normalized candidate attributes extracted from an
// uploaded resume. It is created once per upload and never mutated afterwards.
type ResumeProfile struct {
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Skills  []string `json:"skills"`
	RawText string   `json:"raw_text,omitempty"`
}

// EmptyProfile returns the defaulted profile used when extraction fails.
// Missing data never aborts a session; fields fall back to sentinels.
func EmptyProfile() *ResumeProfile {
	return &ResumeProfile{
		Name:   "",
		Email:  UnknownEmail,
		Skills: []string{},
	}
}

// Question is a single interview question with the keywords a good answer is
// expected to touch. Questions are generated in a batch and are immutable;
// their order is significant because answer indexes align with question indexes.
type Question struct {
	Text             string   `json:"text"`
	ExpectedKeywords []string `json:"expected_keywords"`
}

// Answer is the candidate's response to the question at QuestionIndex.
// A skipped question is represented by an empty Text, never a missing entry.
type Answer struct {
	QuestionIndex int    `json:"question_index"`
	Text          string `json:"text"`
}

// InterviewReport is the final artifact of a completed session.
// Score is always on the canonical 0-100 scale regardless of scoring strategy.
type InterviewReport struct {
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	Role           string    `json:"role"`
	Score          float64   `json:"score"`
	FeedbackText   string    `json:"feedback_text"`
	CreatedAt      time.Time `json:"created_at"`
}

// JobPosting is one recommendation returned by the job-search collaborator.
// Fields the provider omitted are filled with PlaceholderField by the client.
type JobPosting struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Snippet  string `json:"snippet,omitempty"`
	Link     string `json:"link"`
}

// PlaceholderField is rendered for job posting fields missing from the
// provider response.
const PlaceholderField = "N/A"
