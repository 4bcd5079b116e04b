package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/smarthire/internal/extraction"
	"github.com/jonathan/smarthire/internal/report"
	"github.com/jonathan/smarthire/internal/session"
	"github.com/jonathan/smarthire/internal/types"
)

// maxUploadBytes caps resume uploads at 10 MB.
const maxUploadBytes = 10 << 20

// SessionResponse represents a session in API responses
type SessionResponse struct {
	SessionID string               `json:"session_id"`
	State     string               `json:"state"`
	Role      string               `json:"role,omitempty"`
	Profile   *types.ResumeProfile `json:"profile,omitempty"`
}

// QuestionsResponse represents the generated question list
type QuestionsResponse struct {
	SessionID string           `json:"session_id"`
	Questions []types.Question `json:"questions"`
	Current   int              `json:"current"`
}

// ReportResponse represents the finished report plus rendering extras
type ReportResponse struct {
	SessionID string                 `json:"session_id"`
	Report    *types.InterviewReport `json:"report"`
	Insight   string                 `json:"insight,omitempty"`
	Body      string                 `json:"body"`
}

func sessionResponse(s *session.Session) SessionResponse {
	return SessionResponse{
		SessionID: s.ID(),
		State:     string(s.State()),
		Role:      s.Role(),
		Profile:   s.Profile(),
	}
}

func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.store.Get(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil, false
	}
	return sess, true
}

// handleCreateSession starts a new interview session from an uploaded resume.
// Expects a multipart form with the file under the "resume" field. Extraction
// failures still produce a usable session; the profile just carries the
// sentinel values.
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart form: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Missing resume file")
		return
	}
	defer file.Close()

	text, err := s.extractor.ExtractText(header.Filename, file)
	if err != nil {
		status := HTTPStatus(err)
		if status != http.StatusBadRequest {
			// Extraction trouble is not the candidate's problem; continue
			// with an empty profile.
			text = ""
		} else {
			s.errorResponse(w, status, err.Error())
			return
		}
	}

	sess := s.store.Create()
	if err := sess.AttachProfile(extraction.BuildProfile(text)); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusCreated, sessionResponse(sess))
}

// handleChooseRole fixes the role for a session
func (s *Server) handleChooseRole(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req types.ChooseRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := sess.ChooseRole(req.Role); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

// handleGetSession returns the session state
func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.jsonResponse(w, http.StatusOK, sessionResponse(sess))
}

// handleQuestions returns the question list, generating it on first call.
func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	if sess.State() == session.StateRoleChosen {
		if _, err := s.pipeline.GenerateQuestions(r.Context(), sess); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	qs := sess.Questions()
	if qs == nil {
		s.errorResponse(w, http.StatusConflict, "questions are not available before a role is chosen")
		return
	}

	s.jsonResponse(w, http.StatusOK, QuestionsResponse{
		SessionID: sess.ID(),
		Questions: qs,
		Current:   sess.CurrentQuestion(),
	})
}

// handleRecordAnswer records one answer
func (s *Server) handleRecordAnswer(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req types.RecordAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if err := sess.RecordAnswer(req.Index, req.Text); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, QuestionsResponse{
		SessionID: sess.ID(),
		Questions: sess.Questions(),
		Current:   sess.CurrentQuestion(),
	})
}

// handleSubmit scores the interview and builds the report
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	rep, err := s.pipeline.Submit(r.Context(), sess)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, ReportResponse{
		SessionID: sess.ID(),
		Report:    rep,
		Insight:   s.pipeline.Insight(sess),
		Body:      report.Body(rep, s.pipeline.Insight(sess)),
	})
}

// handleReport returns the finished report
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	rep := sess.Report()
	if rep == nil {
		s.errorResponse(w, http.StatusConflict, "report is not available before submission")
		return
	}

	s.jsonResponse(w, http.StatusOK, ReportResponse{
		SessionID: sess.ID(),
		Report:    rep,
		Insight:   s.pipeline.Insight(sess),
		Body:      report.Body(rep, s.pipeline.Insight(sess)),
	})
}

// handleJobs returns job recommendations for the session's role
func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}

	if sess.Role() == "" {
		s.errorResponse(w, http.StatusConflict, "job recommendations require a chosen role")
		return
	}

	jobs, err := s.pipeline.RecommendJobs(r.Context(), sess)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"session_id": sess.ID(),
		"jobs":       jobs,
	})
}

// handleDeleteSession abandons a session
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
