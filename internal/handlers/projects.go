package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dconn.dev/showcase/internal/services"
)

// ProjectHandler handles project-related endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	log            *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, log *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, log: log}
}

// ListProjects handles GET /api/projects
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects := h.projectService.Showcase()
	respondJSON(w, h.log, http.StatusOK, projects)
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if errors.Is(err, services.ErrProjectNotFound) {
		respondError(w, h.log, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		h.log.Error("get project", zap.String("id", id), zap.Error(err))
		respondError(w, h.log, http.StatusInternalServerError, "Internal error")
		return
	}

	respondJSON(w, h.log, http.StatusOK, project)
}
