// Package report assembles the final interview report and delivers it to the
// configured sinks: an append-only CSV log, email, and optionally Postgres.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/smarthire/internal/scoring"
	"github.com/jonathan/smarthire/internal/types"
)

// Build assembles an InterviewReport from the session's raw outcome. Missing
// candidate fields fall back to the profile sentinels so every report is
// loggable and mailable.
func Build(profile *types.ResumeProfile, role string, score float64, feedbackText string, now time.Time) *types.InterviewReport {
	name := profile.Name
	if name == "" {
		name = types.PlaceholderField
	}
	email := profile.Email
	if email == "" {
		email = types.UnknownEmail
	}
	return &types.InterviewReport{
		CandidateName:  name,
		CandidateEmail: email,
		Role:           role,
		Score:          scoring.Round2(score),
		FeedbackText:   strings.TrimSpace(feedbackText),
		CreatedAt:      now.UTC(),
	}
}

// SkillsInsight renders the skills-match line appended to report bodies.
// avgMatch is the mean fraction of bank question skills present in the
// candidate profile, in [0, 1].
func SkillsInsight(avgMatch float64) string {
	return fmt.Sprintf("Your skills matched %.0f%% of what this role's questions typically probe.", avgMatch*100)
}

// Body renders the plain-text report body used for email and terminal output.
func Body(r *types.InterviewReport, insight string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Candidate: %s\n", r.CandidateName)
	fmt.Fprintf(&sb, "Role: %s\n", r.Role)
	fmt.Fprintf(&sb, "Score: %.2f / 100\n", r.Score)
	fmt.Fprintf(&sb, "Date: %s\n\n", r.CreatedAt.Format("2006-01-02 15:04"))
	sb.WriteString(r.FeedbackText)
	if insight != "" {
		sb.WriteString("\n\n")
		sb.WriteString(insight)
	}
	return sb.String()
}
