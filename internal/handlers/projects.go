package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"arvela.dev/internal/loader"
	"arvela.dev/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.All(r.Context())
	if err != nil {
		log.Printf("listing projects: %v", err)
		respondError(w, http.StatusBadGateway, "Failed to load projects")
		return
	}
	respondJSON(w, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, loader.ErrSourceUnavailable) || errors.Is(err, loader.ErrDecodeFailed) {
			log.Printf("loading project %s: %v", id, err)
			respondError(w, http.StatusBadGateway, "Failed to load projects")
			return
		}
		respondError(w, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, http.StatusOK, project)
}
