package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"projecthub-backend/internal/domain"
)

// Memory backs the three repositories with process-local maps. It exists so
// tests (and local development without postgres) can substitute a fake
// store through the same interfaces the GORM implementations satisfy; it is
// injected like any other implementation, never shared as a module global.
type Memory struct {
	mu sync.Mutex

	users    map[uint]domain.User
	projects map[uint]domain.Project
	todos    map[uint]domain.Todo

	nextUserID    uint
	nextProjectID uint
	nextTodoID    uint
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:    make(map[uint]domain.User),
		projects: make(map[uint]domain.Project),
		todos:    make(map[uint]domain.Todo),
	}
}

// Users returns the UserRepository view of the store.
func (m *Memory) Users() UserRepository { return &memoryUsers{m} }

// Projects returns the ProjectRepository view of the store.
func (m *Memory) Projects() ProjectRepository { return &memoryProjects{m} }

// Todos returns the TodoRepository view of the store.
func (m *Memory) Todos() TodoRepository { return &memoryTodos{m} }

type memoryUsers struct{ m *Memory }

func (r *memoryUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Email == email {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUsers) Create(_ context.Context, user *domain.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	for _, u := range r.m.users {
		if u.Email == user.Email {
			return fmt.Errorf("duplicate email %q", user.Email)
		}
	}
	r.m.nextUserID++
	user.ID = r.m.nextUserID
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.m.users[user.ID] = *user
	return nil
}

type memoryProjects struct{ m *Memory }

func (r *memoryProjects) Create(_ context.Context, project *domain.Project) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextProjectID++
	project.ID = r.m.nextProjectID
	now := time.Now()
	project.CreatedAt = now
	project.UpdatedAt = now
	r.m.projects[project.ID] = *project
	return nil
}

func (r *memoryProjects) FindByIDAndOwner(_ context.Context, id, ownerID uint) (*domain.Project, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.projects[id]
	if !ok || p.OwnerID != ownerID {
		return nil, ErrNotFound
	}
	project := p
	return &project, nil
}

func (r *memoryProjects) FindAllByOwner(_ context.Context, ownerID uint) ([]domain.Project, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var projects []domain.Project
	// Highest id first approximates created_at DESC ordering.
	for id := r.m.nextProjectID; id > 0; id-- {
		if p, ok := r.m.projects[id]; ok && p.OwnerID == ownerID {
			projects = append(projects, p)
		}
	}
	return projects, nil
}

func (r *memoryProjects) Update(_ context.Context, project *domain.Project) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.projects[project.ID]; !ok {
		return ErrNotFound
	}
	project.UpdatedAt = time.Now()
	r.m.projects[project.ID] = *project
	return nil
}

func (r *memoryProjects) Delete(_ context.Context, id, ownerID uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	p, ok := r.m.projects[id]
	if !ok || p.OwnerID != ownerID {
		return ErrNotFound
	}
	delete(r.m.projects, id)
	// Mirror the foreign key's cascade.
	for todoID, todo := range r.m.todos {
		if todo.ProjectID == id {
			delete(r.m.todos, todoID)
		}
	}
	return nil
}

type memoryTodos struct{ m *Memory }

func (r *memoryTodos) Create(_ context.Context, todo *domain.Todo) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.nextTodoID++
	todo.ID = r.m.nextTodoID
	now := time.Now()
	todo.CreatedAt = now
	todo.UpdatedAt = now
	r.m.todos[todo.ID] = *todo
	return nil
}

func (r *memoryTodos) FindByID(_ context.Context, id uint) (*domain.Todo, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	t, ok := r.m.todos[id]
	if !ok {
		return nil, ErrNotFound
	}
	todo := t
	return &todo, nil
}

func (r *memoryTodos) FindAllByProject(_ context.Context, projectID uint) ([]domain.Todo, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	var todos []domain.Todo
	for id := r.m.nextTodoID; id > 0; id-- {
		if t, ok := r.m.todos[id]; ok && t.ProjectID == projectID {
			todos = append(todos, t)
		}
	}
	return todos, nil
}

func (r *memoryTodos) Update(_ context.Context, todo *domain.Todo) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.todos[todo.ID]; !ok {
		return ErrNotFound
	}
	todo.UpdatedAt = time.Now()
	r.m.todos[todo.ID] = *todo
	return nil
}

func (r *memoryTodos) Delete(_ context.Context, id uint) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.todos[id]; !ok {
		return ErrNotFound
	}
	delete(r.m.todos, id)
	return nil
}
