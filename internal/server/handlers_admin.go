package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathan/smarthire/internal/types"
)

// handleAdminLogin exchanges the configured admin credentials for a JWT.
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if s.admin == nil || s.jwtService == nil {
		err := &ErrAdminDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	if !s.admin.Authenticate(req.Email, req.Password) {
		err := &ErrInvalidCredentials{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	token, err := s.jwtService.GenerateToken(req.Email)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}

	s.jsonResponse(w, http.StatusOK, types.AdminLoginResponse{Token: token})
}

// requireAdmin validates the bearer token on admin routes.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if s.admin == nil || s.jwtService == nil {
		err := &ErrAdminDisabled{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return false
	}

	header := r.Header.Get("Authorization")
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		s.errorResponse(w, http.StatusUnauthorized, "Missing bearer token")
		return false
	}

	if _, err := s.jwtService.ValidateToken(token); err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Invalid token")
		return false
	}
	return true
}

// handleAdminReports lists finished reports. With ?format=csv the raw report
// log is streamed; otherwise rows come from Postgres when configured, falling
// back to the CSV log.
func (s *Server) handleAdminReports(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}

	if r.URL.Query().Get("format") == "csv" {
		s.serveReportLog(w)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = n
	}

	if s.db != nil {
		rows, err := s.db.ListReports(r.Context(), limit)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{"reports": rows})
		return
	}

	entries, err := s.csvLog.Entries()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"reports": entries})
}

// serveReportLog streams the CSV report log as a download. Reading through
// the log keeps the download serialized with concurrent appends.
func (s *Server) serveReportLog(w http.ResponseWriter) {
	data, err := s.csvLog.Raw()
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="interview_reports.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
