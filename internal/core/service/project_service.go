package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/febic/fair-platform/internal/core/domain"
	"github.com/febic/fair-platform/internal/core/ports"
)

// ProjectService scopes project reads by the viewer's permissions.
type ProjectService struct {
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, logger: logger}
}

// ListVisible returns every project for view-all-projects holders and only
// the viewer's own projects otherwise.
func (s *ProjectService) ListVisible(ctx context.Context, viewer *domain.User) ([]domain.Project, error) {
	if viewer == nil {
		return nil, domain.ErrUnauthorized
	}
	if domain.CanViewAllProjects(viewer) {
		return s.projects.List(ctx)
	}
	return s.projects.ListByMember(ctx, viewer.ID)
}

// Get fetches a single project, requiring either view-all-projects or
// membership.
func (s *ProjectService) Get(ctx context.Context, viewer *domain.User, id string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanViewAllProjects(viewer) && (viewer == nil || !project.HasMember(viewer.ID)) {
		return nil, domain.ErrUnauthorized
	}
	return project, nil
}
