package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/smarthire/internal/config"
	"github.com/jonathan/smarthire/internal/extraction"
	"github.com/jonathan/smarthire/internal/questions"
	"github.com/jonathan/smarthire/internal/report"
	"github.com/jonathan/smarthire/internal/scoring"
	"github.com/jonathan/smarthire/internal/session"
	"github.com/jonathan/smarthire/internal/types"
)

const resumeText = `John Doe
john@example.com
Experienced tester working with Go, Python and Docker.`

func newTestServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	csvLog := report.NewCSVLog(filepath.Join(dir, "reports.csv"))
	pipeline := session.NewPipeline(
		questions.NewTemplateSource(),
		func(string) scoring.Scorer { return scoring.NewKeywordCoverageScorer() },
		csvLog,
	)
	return New(Config{Port: 0}, Deps{
		Store:     session.NewStore(),
		Pipeline:  pipeline,
		Extractor: extraction.NewExtractor(dir),
		CSVLog:    csvLog,
	})
}

func newAdminServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("ADMIN_PASSWORD_HASH", "")
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("JWT_EXPIRATION_HOURS", "1")

	srv := newTestServer(t)
	admin, err := config.NewAdminConfig()
	require.NoError(t, err)
	jwtCfg, err := config.NewJWTConfig()
	require.NoError(t, err)
	srv.admin = admin
	srv.jwtService = NewJWTService(jwtCfg)
	return srv
}

func doJSON(t *testing.T, srv *Server, method, path string, body any, headers ...http.Header) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, h := range headers {
		for k, v := range h {
			req.Header[k] = v
		}
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func uploadResume(t *testing.T, srv *Server) string {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("resume", "resume.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte(resumeText))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/sessions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "John Doe", resp.Profile.Name)
	assert.Equal(t, "john@example.com", resp.Profile.Email)
	return resp.SessionID
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ok")
}

func TestInterviewFlow(t *testing.T) {
	srv := newTestServer(t)
	id := uploadResume(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/role", types.ChooseRoleRequest{Role: "Tester"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, srv, http.MethodGet, "/sessions/"+id+"/questions", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var qResp QuestionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &qResp))
	require.Len(t, qResp.Questions, 3)

	answerTexts := []string{"I handle responsibilities well", "I don't know", "I did a project"}
	for i, text := range answerTexts {
		rec = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/answers", types.RecordAnswerRequest{Index: i, Text: text})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}

	rec = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var rResp ReportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rResp))
	require.NotNil(t, rResp.Report)
	assert.Equal(t, 66.67, rResp.Report.Score)
	assert.Equal(t, "John Doe", rResp.Report.CandidateName)

	rec = doJSON(t, srv, http.MethodGet, "/sessions/"+id+"/report", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// No job search client configured; recommendations degrade to empty.
	rec = doJSON(t, srv, http.MethodGet, "/sessions/"+id+"/jobs", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"jobs":[]`)

	rec = doJSON(t, srv, http.MethodDelete, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, srv, http.MethodGet, "/sessions/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestChooseRole_ValidationAndOrdering(t *testing.T) {
	srv := newTestServer(t)
	id := uploadResume(t, srv)

	rec := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/role", types.ChooseRoleRequest{Role: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/role", types.ChooseRoleRequest{Role: "Tester"})
	require.Equal(t, http.StatusOK, rec.Code)

	// Role is fixed for the life of the session.
	rec = doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/role", types.ChooseRoleRequest{Role: "Other"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestQuestionsBeforeRole(t *testing.T) {
	srv := newTestServer(t)
	id := uploadResume(t, srv)

	rec := doJSON(t, srv, http.MethodGet, "/sessions/"+id+"/questions", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRecordAnswer_OutOfRange(t *testing.T) {
	srv := newTestServer(t)
	id := uploadResume(t, srv)
	doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/role", types.ChooseRoleRequest{Role: "Tester"})
	doJSON(t, srv, http.MethodGet, "/sessions/"+id+"/questions", nil)

	rec := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/answers", types.RecordAnswerRequest{Index: 9, Text: "nope"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSubmitBeforeAllAnswered(t *testing.T) {
	srv := newTestServer(t)
	id := uploadResume(t, srv)
	doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/role", types.ChooseRoleRequest{Role: "Tester"})
	doJSON(t, srv, http.MethodGet, "/sessions/"+id+"/questions", nil)
	doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/answers", types.RecordAnswerRequest{Index: 0, Text: "only one"})

	rec := doJSON(t, srv, http.MethodPost, "/sessions/"+id+"/submit", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateSession_MissingFile(t *testing.T) {
	srv := newTestServer(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("unused", "x"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/sessions", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminLoginAndReports(t *testing.T) {
	srv := newAdminServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/admin/login", types.AdminLoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/admin/login", types.AdminLoginRequest{Email: "admin@example.com", Password: "hunter2"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var login types.AdminLoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	rec = doJSON(t, srv, http.MethodGet, "/admin/reports", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	auth := http.Header{"Authorization": []string{fmt.Sprintf("Bearer %s", login.Token)}}
	rec = doJSON(t, srv, http.MethodGet, "/admin/reports", nil, auth)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/admin/reports?format=csv", nil, auth)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))
}

func TestAdminDisabled(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/admin/login", types.AdminLoginRequest{Email: "admin@example.com", Password: "pw"})
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
