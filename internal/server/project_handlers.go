package server

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"projecthub-backend/internal/service"
)

// parseIDParam reads a positive numeric URL parameter. It writes the error
// response itself and reports whether parsing succeeded.
func parseIDParam(w http.ResponseWriter, r *http.Request, name string) (uint, bool) {
	idStr := chi.URLParam(r, name)
	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil || id == 0 {
		respondWithError(w, http.StatusBadRequest, "Invalid ID provided")
		return 0, false
	}
	return uint(id), true
}

// identity returns the caller's verified user id. A protected handler
// reached without one means the middleware was bypassed; answer 401.
func identity(w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := userIDFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return 0, false
	}
	return userID, true
}

func (s *Server) listProjectsHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}

	projects, err := s.projectService.List(r.Context(), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, projects)
}

func (s *Server) getProjectHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	project, err := s.projectService.Get(r.Context(), userID, id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, project)
}

func (s *Server) createProjectHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}

	var req service.CreateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	project, err := s.projectService.Create(r.Context(), userID, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, project)
}

func (s *Server) updateProjectHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	var req service.UpdateProjectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	project, err := s.projectService.Update(r.Context(), userID, id, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, project)
}

func (s *Server) deleteProjectHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := identity(w, r)
	if !ok {
		return
	}
	id, ok := parseIDParam(w, r, "id")
	if !ok {
		return
	}

	if err := s.projectService.Delete(r.Context(), userID, id); err != nil {
		respondServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "Project deleted successfully"})
}
