package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"projecthub-backend/internal/domain"
	"projecthub-backend/internal/repository"
)

// CreateTodoRequest holds the data needed to create a new todo
type CreateTodoRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	ProjectID   uint            `json:"project_id"`
	Priority    domain.Priority `json:"priority"`
}

// UpdateTodoRequest holds the data for updating an existing todo.
// Using pointers allows distinguishing between a field being omitted
// vs. being set to its zero value (e.g., setting Completed to false).
type UpdateTodoRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	Completed   *bool            `json:"completed"`
	Priority    *domain.Priority `json:"priority"`
}

// TodoResponse is the standard representation of a Todo returned by the
// service.
type TodoResponse struct {
	ID          uint            `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Completed   bool            `json:"completed"`
	Priority    domain.Priority `json:"priority"`
	ProjectID   uint            `json:"project_id"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// TodoService defines the operations for managing todos. A todo is only
// reachable when its parent project belongs to the verified owner; a todo
// under someone else's project behaves exactly like a missing row. The
// parent is resolved before every todo read or write.
type TodoService interface {
	ListByProject(ctx context.Context, ownerID, projectID uint) ([]TodoResponse, error)
	Get(ctx context.Context, ownerID, id uint) (*TodoResponse, error)
	Create(ctx context.Context, ownerID uint, req CreateTodoRequest) (*TodoResponse, error)
	Update(ctx context.Context, ownerID, id uint, req UpdateTodoRequest) (*TodoResponse, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

type todoService struct {
	todos    repository.TodoRepository
	projects repository.ProjectRepository
}

// NewTodoService creates a new instance of todoService. It needs the
// project repository to resolve parent ownership.
func NewTodoService(todos repository.TodoRepository, projects repository.ProjectRepository) TodoService {
	return &todoService{todos: todos, projects: projects}
}

func (s *todoService) ListByProject(ctx context.Context, ownerID, projectID uint) ([]TodoResponse, error) {
	if err := s.checkParent(ctx, ownerID, projectID); err != nil {
		return nil, err
	}

	todos, err := s.todos.FindAllByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	responses := make([]TodoResponse, 0, len(todos))
	for _, t := range todos {
		responses = append(responses, toTodoResponse(&t))
	}
	return responses, nil
}

func (s *todoService) Get(ctx context.Context, ownerID, id uint) (*TodoResponse, error) {
	todo, err := s.fetch(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	resp := toTodoResponse(todo)
	return &resp, nil
}

func (s *todoService) Create(ctx context.Context, ownerID uint, req CreateTodoRequest) (*TodoResponse, error) {
	if req.Title == "" {
		return nil, validationf("Todo title is required")
	}
	if req.ProjectID == 0 {
		return nil, validationf("Project ID is required")
	}
	priority := req.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.Valid() {
		return nil, validationf("Priority must be High, Medium or Low")
	}

	if err := s.checkParent(ctx, ownerID, req.ProjectID); err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		Title:       req.Title,
		Description: req.Description,
		Completed:   false,
		Priority:    priority,
		ProjectID:   req.ProjectID,
	}
	if err := s.todos.Create(ctx, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	resp := toTodoResponse(todo)
	return &resp, nil
}

func (s *todoService) Update(ctx context.Context, ownerID, id uint, req UpdateTodoRequest) (*TodoResponse, error) {
	todo, err := s.fetch(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	// Omitted fields keep their stored values; explicit zero values
	// (false, empty description) overwrite. Title stays required, so an
	// explicit empty title is rejected rather than silently dropped.
	if req.Title != nil {
		if *req.Title == "" {
			return nil, validationf("Todo title is required")
		}
		todo.Title = *req.Title
	}
	if req.Description != nil {
		todo.Description = *req.Description
	}
	if req.Completed != nil {
		todo.Completed = *req.Completed
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, validationf("Priority must be High, Medium or Low")
		}
		todo.Priority = *req.Priority
	}

	if err := s.todos.Update(ctx, todo); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	resp := toTodoResponse(todo)
	return &resp, nil
}

func (s *todoService) Delete(ctx context.Context, ownerID, id uint) error {
	if _, err := s.fetch(ctx, ownerID, id); err != nil {
		return err
	}
	if err := s.todos.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("todo %w", ErrNotFound)
		}
		return fmt.Errorf("delete todo: %w", err)
	}
	return nil
}

// fetch loads a todo and verifies the caller owns its parent project.
// Both a missing todo and a foreign parent come back as ErrNotFound.
func (s *todoService) fetch(ctx context.Context, ownerID, id uint) (*domain.Todo, error) {
	todo, err := s.todos.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("todo %w", ErrNotFound)
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}
	if err := s.checkParent(ctx, ownerID, todo.ProjectID); err != nil {
		return nil, err
	}
	return todo, nil
}

// checkParent resolves projectID scoped by owner. A nonexistent project
// and another owner's project are indistinguishable to the caller.
func (s *todoService) checkParent(ctx context.Context, ownerID, projectID uint) error {
	if _, err := s.projects.FindByIDAndOwner(ctx, projectID, ownerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("project %w", ErrNotFound)
		}
		return fmt.Errorf("check project: %w", err)
	}
	return nil
}

func toTodoResponse(t *domain.Todo) TodoResponse {
	return TodoResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Completed:   t.Completed,
		Priority:    t.Priority,
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}
