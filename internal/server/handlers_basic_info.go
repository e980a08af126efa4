package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jaewoo/careerfolio/internal/profile"
)

func (s *Server) handleGetBasicInfo(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	info, err := s.db.GetBasicInfo(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}
	if info == nil {
		s.errorResponse(w, http.StatusNotFound, "Basic info not set")
		return
	}

	s.jsonResponse(w, http.StatusOK, info)
}

// handleUpsertBasicInfo creates the record on first save, updates it after
func (s *Server) handleUpsertBasicInfo(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req profile.BasicInfo
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" {
		s.errorResponse(w, http.StatusBadRequest, "Name and email are required")
		return
	}
	req.UserID = userID

	id, err := s.db.UpsertBasicInfo(r.Context(), &req)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Database error: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"id": id.String()})
}
