package services

import (
	"errors"
	"fmt"
	"sort"

	"dconn.dev/showcase/internal/models"
)

// ErrProjectNotFound is returned when no project has the requested ID
var ErrProjectNotFound = errors.New("project not found")

// ProjectService handles project-related operations
type ProjectService struct {
	projects *models.ProjectList
}

// NewProjectService creates a new ProjectService
func NewProjectService(projects *models.ProjectList) *ProjectService {
	if projects == nil {
		projects = &models.ProjectList{}
	}
	return &ProjectService{projects: projects}
}

// GetAll returns all projects in catalog order
func (s *ProjectService) GetAll() []models.Project {
	return append([]models.Project(nil), s.projects.Projects...)
}

// Showcase returns all projects with featured ones first, newest first
// within each group. Ties keep catalog order.
func (s *ProjectService) Showcase() []models.Project {
	out := s.GetAll()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Featured != out[j].Featured {
			return out[i].Featured
		}
		return out[i].Year > out[j].Year
	})
	return out
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(id string) (*models.Project, error) {
	for i := range s.projects.Projects {
		if s.projects.Projects[i].ID == id {
			p := s.projects.Projects[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
}
