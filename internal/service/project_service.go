package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"projecthub-backend/internal/domain"
	"projecthub-backend/internal/repository"
)

// CreateProjectRequest holds the data needed to create a new project
type CreateProjectRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateProjectRequest holds the data for updating an existing project.
// Using pointers allows distinguishing between a field being omitted
// vs. being set to its zero value.
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// ProjectResponse is the standard representation of a Project returned by
// the service.
type ProjectResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     uint   `json:"owner_id"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ProjectService defines the operations for managing projects. Every
// operation is scoped to the verified owner id: rows belonging to anyone
// else behave exactly as if they did not exist.
type ProjectService interface {
	List(ctx context.Context, ownerID uint) ([]ProjectResponse, error)
	Get(ctx context.Context, ownerID, id uint) (*ProjectResponse, error)
	Create(ctx context.Context, ownerID uint, req CreateProjectRequest) (*ProjectResponse, error)
	Update(ctx context.Context, ownerID, id uint, req UpdateProjectRequest) (*ProjectResponse, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type projectService struct {
	repo repository.ProjectRepository
}

// NewProjectService creates a new instance of projectService.
func NewProjectService(repo repository.ProjectRepository) ProjectService {
	return &projectService{repo: repo}
}

func (s *projectService) List(ctx context.Context, ownerID uint) ([]ProjectResponse, error) {
	projects, err := s.repo.FindAllByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toProjectResponse(&p))
	}
	return responses, nil
}

func (s *projectService) Get(ctx context.Context, ownerID, id uint) (*ProjectResponse, error) {
	project, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("project %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) Create(ctx context.Context, ownerID uint, req CreateProjectRequest) (*ProjectResponse, error) {
	if req.Name == "" {
		return nil, validationf("Project name is required")
	}

	project := &domain.Project{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) Update(ctx context.Context, ownerID, id uint, req UpdateProjectRequest) (*ProjectResponse, error) {
	project, err := s.repo.FindByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("project %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get project for update: %w", err)
	}

	// Omitted fields keep their stored values; explicitly present fields
	// overwrite. Name stays required, so an explicit empty name is
	// rejected rather than silently dropped.
	if req.Name != nil {
		if *req.Name == "" {
			return nil, validationf("Project name is required")
		}
		project.Name = *req.Name
	}
	if req.Description != nil {
		project.Description = *req.Description
	}

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	resp := toProjectResponse(project)
	return &resp, nil
}

func (s *projectService) Delete(ctx context.Context, ownerID, id uint) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("project %w", ErrNotFound)
		}
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

func toProjectResponse(p *domain.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		OwnerID:     p.OwnerID,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}
