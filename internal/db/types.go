package db

import "time"

// DefaultListLimit caps admin report listings when no limit is given.
const DefaultListLimit = 100

// ReportRow is one persisted interview report as stored in Postgres.
type ReportRow struct {
	ID             int64     `json:"id"`
	CandidateName  string    `json:"candidate_name"`
	CandidateEmail string    `json:"candidate_email"`
	Role           string    `json:"role"`
	Score          float64   `json:"score"`
	Feedback       string    `json:"feedback"`
	CreatedAt      time.Time `json:"created_at"`
}
