package session

import (
	"context"
	"log"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/smarthire/internal/jobsearch"
	"github.com/jonathan/smarthire/internal/questions"
	"github.com/jonathan/smarthire/internal/report"
	"github.com/jonathan/smarthire/internal/scoring"
	"github.com/jonathan/smarthire/internal/types"
)

// ReportStore persists finished reports for the admin surface.
type ReportStore interface {
	SaveReport(ctx context.Context, r *types.InterviewReport) error
}

// Pipeline wires the question source, scorer and report sinks around the
// session state machine. The CSV log is the one mandatory sink; everything
// else is optional and degrades to a logged warning.
type Pipeline struct {
	source    questions.Source
	scorerFor func(role string) scoring.Scorer
	csvLog    *report.CSVLog

	mailer report.Mailer
	jobs   *jobsearch.Client
	bank   *questions.Bank
	store  ReportStore
}

// NewPipeline creates a pipeline with the mandatory collaborators. Optional
// sinks are added with the With methods.
func NewPipeline(source questions.Source, scorerFor func(role string) scoring.Scorer, csvLog *report.CSVLog) *Pipeline {
	return &Pipeline{source: source, scorerFor: scorerFor, csvLog: csvLog}
}

func (p *Pipeline) WithMailer(m report.Mailer) *Pipeline {
	p.mailer = m
	return p
}

func (p *Pipeline) WithJobSearch(c *jobsearch.Client) *Pipeline {
	p.jobs = c
	return p
}

func (p *Pipeline) WithBank(b *questions.Bank) *Pipeline {
	p.bank = b
	return p
}

func (p *Pipeline) WithReportStore(s ReportStore) *Pipeline {
	p.store = s
	return p
}

// GenerateQuestions produces the question list for the session's role and
// installs it. Generation never fails outright; on source failure a single
// diagnostic question is used instead.
func (p *Pipeline) GenerateQuestions(ctx context.Context, s *Session) ([]types.Question, error) {
	qs := questions.GenerateSafe(ctx, p.source, s.Role(), s.Profile())
	if err := s.SetQuestions(qs); err != nil {
		return nil, err
	}
	return qs, nil
}

// Submit scores a fully answered session, builds the report, fans out to the
// configured sinks and closes the lifecycle. Scorer failures degrade to a
// zero score and sink failures are warnings; once every question is answered
// the session always reaches Done with a report.
func (p *Pipeline) Submit(ctx context.Context, s *Session) (*types.InterviewReport, error) {
	// Premature submits fail here, before the possibly slow and metered
	// scorer call.
	if state := s.State(); state != StateAllAnswered {
		return nil, &InvalidTransitionError{From: state, Event: "score"}
	}

	scorer := p.scorerFor(s.Role())
	score, feedback := scoring.ScoreSafe(ctx, scorer, s.Questions(), s.Answers())
	if err := s.MarkScored(score, feedback); err != nil {
		return nil, err
	}

	r := report.Build(s.Profile(), s.Role(), score, feedback, time.Now())
	if err := s.AttachReport(r); err != nil {
		return nil, err
	}

	p.export(ctx, s, r)

	if err := s.Finish(); err != nil {
		return nil, err
	}
	return r, nil
}

// export fans the report out to the sinks in parallel. Every branch logs and
// swallows its own error so one slow or broken sink never blocks the others
// or the candidate's response.
func (p *Pipeline) export(ctx context.Context, s *Session, r *types.InterviewReport) {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := p.csvLog.Append(r); err != nil {
			log.Printf("[PIPELINE] CSV log append failed: %v", err)
		}
		return nil
	})

	if p.store != nil {
		g.Go(func() error {
			if err := p.store.SaveReport(ctx, r); err != nil {
				log.Printf("[PIPELINE] report persistence failed: %v", err)
			}
			return nil
		})
	}

	if p.mailer != nil {
		g.Go(func() error {
			if err := p.mailer.SendReport(ctx, r.CandidateEmail, r, p.insight(s)); err != nil {
				log.Printf("[PIPELINE] report email failed: %v", err)
			}
			return nil
		})
	}

	_ = g.Wait()
}

// insight renders the skills-match line when a question bank is configured.
func (p *Pipeline) insight(s *Session) string {
	if p.bank == nil {
		return ""
	}
	match := p.bank.AverageSkillMatch(s.Profile().Skills)
	if match == 0 {
		return ""
	}
	return report.SkillsInsight(match)
}

// Insight exposes the skills-match line for terminal and HTTP rendering.
func (p *Pipeline) Insight(s *Session) string {
	return p.insight(s)
}

// RecommendJobs fetches postings for the session's role, caching the result
// on the session so repeated reads do not hit the API again.
func (p *Pipeline) RecommendJobs(ctx context.Context, s *Session) ([]types.JobPosting, error) {
	if jobs, ok := s.CachedJobs(); ok {
		return jobs, nil
	}
	if p.jobs == nil {
		return []types.JobPosting{}, nil
	}
	jobs, err := p.jobs.Search(ctx, s.Role())
	if err != nil {
		return nil, err
	}
	s.CacheJobs(jobs)
	return jobs, nil
}
