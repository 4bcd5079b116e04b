// Package session holds per-interview state and drives it through the fixed
// forward lifecycle: resume upload, role choice, question generation,
// answering, scoring, report delivery.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/smarthire/internal/answers"
	"github.com/jonathan/smarthire/internal/types"
)

// State names a stage in the interview lifecycle. Transitions only move
// forward; the only way back is deleting the session and starting over.
type State string

const (
	StateIdle               State = "idle"
	StateResumeUploaded     State = "resume_uploaded"
	StateRoleChosen         State = "role_chosen"
	StateQuestionsGenerated State = "questions_generated"
	StateAnswering          State = "answering"
	StateAllAnswered        State = "all_answered"
	StateScored             State = "scored"
	StateReported           State = "reported"
	StateDone               State = "done"
)

// InvalidTransitionError is returned when an operation arrives in a state it
// is not defined for.
type InvalidTransitionError struct {
	From  State
	Event string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s in state %q", e.Event, e.From)
}

// Session is one candidate's interview. All methods are safe for concurrent
// use.
type Session struct {
	mu sync.Mutex

	id        string
	state     State
	createdAt time.Time

	profile   *types.ResumeProfile
	role      string
	questions []types.Question
	collector *answers.Collector
	recorded  []bool
	answered  int
	current   int

	score    float64
	feedback string
	report   *types.InterviewReport
	jobs     []types.JobPosting
}

// New creates an empty session in the idle state.
func New() *Session {
	return &Session{
		id:        uuid.NewString(),
		state:     StateIdle,
		profile:   types.EmptyProfile(),
		createdAt: time.Now().UTC(),
	}
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) CreatedAt() time.Time { return s.createdAt }

// AttachProfile records the extracted resume profile.
func (s *Session) AttachProfile(profile *types.ResumeProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateIdle {
		return &InvalidTransitionError{From: s.state, Event: "upload resume"}
	}
	if profile == nil {
		profile = types.EmptyProfile()
	}
	s.profile = profile
	s.state = StateResumeUploaded
	return nil
}

// ChooseRole fixes the target role for the rest of the session.
func (s *Session) ChooseRole(role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateResumeUploaded {
		return &InvalidTransitionError{From: s.state, Event: "choose role"}
	}
	s.role = role
	s.state = StateRoleChosen
	return nil
}

// SetQuestions installs the generated question list and opens answering. An
// empty list is a valid outcome (a bank role with no entries); with nothing
// to answer the session moves directly to AllAnswered so scoring and the
// report remain reachable.
func (s *Session) SetQuestions(questions []types.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateRoleChosen {
		return &InvalidTransitionError{From: s.state, Event: "generate questions"}
	}
	s.questions = questions
	s.collector = answers.NewCollector(len(questions))
	s.recorded = make([]bool, len(questions))
	s.answered = 0
	s.current = 0
	if len(questions) == 0 {
		s.state = StateAllAnswered
	} else {
		s.state = StateQuestionsGenerated
	}
	return nil
}

// RecordAnswer stores the answer for one question. Re-answering an earlier
// question overwrites the previous text without moving the cursor; answering
// the current question advances it. The session reaches AllAnswered once
// every question has an answer.
func (s *Session) RecordAnswer(index int, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateQuestionsGenerated && s.state != StateAnswering {
		return &InvalidTransitionError{From: s.state, Event: "record answer"}
	}
	if err := s.collector.Record(index, text); err != nil {
		return err
	}
	if !s.recorded[index] {
		s.recorded[index] = true
		s.answered++
	}
	if index == s.current {
		s.current++
	}
	if s.answered == len(s.questions) {
		s.state = StateAllAnswered
	} else {
		s.state = StateAnswering
	}
	return nil
}

// MarkScored records the scoring outcome.
func (s *Session) MarkScored(score float64, feedback string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateAllAnswered {
		return &InvalidTransitionError{From: s.state, Event: "score"}
	}
	s.score = score
	s.feedback = feedback
	s.state = StateScored
	return nil
}

// AttachReport records the built report.
func (s *Session) AttachReport(r *types.InterviewReport) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateScored {
		return &InvalidTransitionError{From: s.state, Event: "attach report"}
	}
	s.report = r
	s.state = StateReported
	return nil
}

// Finish closes the lifecycle after report delivery.
func (s *Session) Finish() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateReported {
		return &InvalidTransitionError{From: s.state, Event: "finish"}
	}
	s.state = StateDone
	return nil
}

// Profile returns the attached resume profile.
func (s *Session) Profile() *types.ResumeProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// Role returns the chosen role, empty before ChooseRole.
func (s *Session) Role() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.role
}

// Questions returns the generated questions, nil before generation.
func (s *Session) Questions() []types.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions
}

// Answers returns the recorded answers in question order.
func (s *Session) Answers() []types.Answer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.collector == nil {
		return nil
	}
	return s.collector.All()
}

// CurrentQuestion returns the index of the next unanswered question under the
// forward cursor.
func (s *Session) CurrentQuestion() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Outcome returns the score and feedback once the session has been scored.
func (s *Session) Outcome() (float64, string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateScored && s.state != StateReported && s.state != StateDone {
		return 0, "", false
	}
	return s.score, s.feedback, true
}

// Report returns the built report, nil until the session reaches Reported.
func (s *Session) Report() *types.InterviewReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.report
}

// CachedJobs returns job postings previously stored with CacheJobs.
func (s *Session) CachedJobs() ([]types.JobPosting, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs, s.jobs != nil
}

// CacheJobs stores the postings fetched for this session.
func (s *Session) CacheJobs(jobs []types.JobPosting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if jobs == nil {
		jobs = []types.JobPosting{}
	}
	s.jobs = jobs
}
