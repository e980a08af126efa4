package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jaewoo/careerfolio/internal/document"
	"github.com/jaewoo/careerfolio/internal/profile"
	"github.com/jaewoo/careerfolio/internal/stats"
)

func (s *Server) handleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	snap, err := s.db.LoadSnapshot(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, snap)
}

func (s *Server) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	snap, err := s.db.LoadSnapshot(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stats.BuildDashboard(snap, profile.CurrentYearMonth()))
}

// handleListSections reports the recognized sections and default selection
// for a document kind
func (s *Server) handleListSections(w http.ResponseWriter, r *http.Request) {
	kind, ok := parseKind(r.PathValue("kind"))
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Unknown document kind")
		return
	}

	sel := document.NewSelection(kind)
	sections := document.Sections(kind)
	defaults := make(map[string]bool, len(sections))
	for _, sec := range sections {
		defaults[string(sec)] = sel.Enabled(sec)
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"kind":     kind,
		"sections": sections,
		"defaults": defaults,
	})
}

// handleGetDocument builds the view model for a document kind. Query
// parameters named after sections override the default selection, for
// example ?education=true&projects=false.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	kind, ok := parseKind(r.PathValue("kind"))
	if !ok {
		s.errorResponse(w, http.StatusBadRequest, "Unknown document kind")
		return
	}

	sel := document.NewSelection(kind)
	for key, values := range r.URL.Query() {
		if len(values) == 0 {
			continue
		}
		on, err := strconv.ParseBool(values[0])
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid value for section "+key)
			return
		}
		if err := sel.Set(document.Section(key), on); err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
	}

	snap, err := s.db.LoadSnapshot(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	doc := document.Build(sel, snap, profile.CurrentYearMonth())
	s.jsonResponse(w, http.StatusOK, doc)
}

func parseKind(raw string) (document.Kind, bool) {
	switch kind := document.Kind(raw); kind {
	case document.KindResume, document.KindCareerStatement:
		return kind, true
	default:
		return "", false
	}
}
