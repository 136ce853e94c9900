package services

import (
	"context"
	"fmt"

	"arvela.dev/internal/loader"
	"arvela.dev/internal/models"
)

// ProjectService handles project-related operations
type ProjectService struct {
	loader *loader.Loader
}

// NewProjectService creates a new ProjectService
func NewProjectService(l *loader.Loader) *ProjectService {
	return &ProjectService{loader: l}
}

// All loads the projects document and returns every project in document
// order. Each call performs one load; the document is never cached, so
// one page load maps to one retrieval.
func (s *ProjectService) All(ctx context.Context) ([]models.Project, error) {
	return s.loader.Load(ctx)
}

// GetByID returns a specific project by ID
func (s *ProjectService) GetByID(ctx context.Context, id string) (*models.Project, error) {
	projects, err := s.loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			return &projects[i], nil
		}
	}
	return nil, fmt.Errorf("project not found: %s", id)
}
