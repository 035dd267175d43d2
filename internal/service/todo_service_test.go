package service

import (
	"context"
	"errors"
	"testing"

	"projecthub-backend/internal/domain"
	"projecthub-backend/internal/repository"
)

// newTestTodoService wires todo and project services over one shared
// in-memory store and creates a project for each requested owner,
// returning the project ids in order.
func newTestTodoService(t *testing.T, owners ...uint) (TodoService, []uint) {
	t.Helper()
	mem := repository.NewMemory()
	todos := NewTodoService(mem.Todos(), mem.Projects())
	projects := NewProjectService(mem.Projects())

	ids := make([]uint, 0, len(owners))
	for _, owner := range owners {
		p, err := projects.Create(context.Background(), owner, CreateProjectRequest{Name: "P"})
		if err != nil {
			t.Fatalf("create project: %v", err)
		}
		ids = append(ids, p.ID)
	}
	return todos, ids
}

func TestTodoCreateDefaults(t *testing.T) {
	todos, ids := newTestTodoService(t, ownerA)
	ctx := context.Background()

	created, err := todos.Create(ctx, ownerA, CreateTodoRequest{Title: "t1", ProjectID: ids[0]})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Priority != domain.PriorityMedium {
		t.Fatalf("expected default priority Medium, got %q", created.Priority)
	}
	if created.Completed {
		t.Fatal("new todo must not be completed")
	}
	if created.ProjectID != ids[0] {
		t.Fatalf("expected project %d, got %d", ids[0], created.ProjectID)
	}
}

func TestTodoCreateValidation(t *testing.T) {
	todos, ids := newTestTodoService(t, ownerA)
	ctx := context.Background()

	var validationErr *ValidationError
	if _, err := todos.Create(ctx, ownerA, CreateTodoRequest{ProjectID: ids[0]}); !errors.As(err, &validationErr) {
		t.Fatalf("missing title: expected validation error, got %v", err)
	}
	if _, err := todos.Create(ctx, ownerA, CreateTodoRequest{Title: "t"}); !errors.As(err, &validationErr) {
		t.Fatalf("missing project id: expected validation error, got %v", err)
	}
	if _, err := todos.Create(ctx, ownerA, CreateTodoRequest{Title: "t", ProjectID: ids[0], Priority: "Urgent"}); !errors.As(err, &validationErr) {
		t.Fatalf("bad priority: expected validation error, got %v", err)
	}
}

func TestTodoCreateUnresolvedProject(t *testing.T) {
	todos, ids := newTestTodoService(t, ownerA)
	ctx := context.Background()

	if _, err := todos.Create(ctx, ownerA, CreateTodoRequest{Title: "t", ProjectID: 999}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("nonexistent project: expected ErrNotFound, got %v", err)
	}

	// No row may have been created.
	list, err := todos.ListByProject(ctx, ownerA, ids[0])
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 0 {
		t.Fatalf("expected no todos, got %d", len(list))
	}
}

func TestTodoParentOwnershipEnforced(t *testing.T) {
	todos, ids := newTestTodoService(t, ownerA, ownerB)
	ctx := context.Background()
	projectB := ids[1]

	// Owner A cannot create into B's project; a foreign project answers
	// exactly like a missing one.
	if _, err := todos.Create(ctx, ownerA, CreateTodoRequest{Title: "t", ProjectID: projectB}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("create into foreign project: expected ErrNotFound, got %v", err)
	}

	created, err := todos.Create(ctx, ownerB, CreateTodoRequest{Title: "b-todo", ProjectID: projectB})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := todos.Get(ctx, ownerA, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("get foreign todo: expected ErrNotFound, got %v", err)
	}
	done := true
	if _, err := todos.Update(ctx, ownerA, created.ID, UpdateTodoRequest{Completed: &done}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update foreign todo: expected ErrNotFound, got %v", err)
	}
	if err := todos.Delete(ctx, ownerA, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("delete foreign todo: expected ErrNotFound, got %v", err)
	}
	if _, err := todos.ListByProject(ctx, ownerA, projectB); !errors.Is(err, ErrNotFound) {
		t.Fatalf("list foreign project: expected ErrNotFound, got %v", err)
	}

	// And the row survives untouched for its real owner.
	got, err := todos.Get(ctx, ownerB, created.ID)
	if err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if got.Completed {
		t.Fatal("todo was mutated by a non-owner")
	}
}

func TestTodoPartialUpdate(t *testing.T) {
	todos, ids := newTestTodoService(t, ownerA)
	ctx := context.Background()

	created, err := todos.Create(ctx, ownerA, CreateTodoRequest{
		Title: "t1", Description: "orig", ProjectID: ids[0], Priority: domain.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	desc := "patched"
	got, err := todos.Update(ctx, ownerA, created.ID, UpdateTodoRequest{Description: &desc})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "t1" || got.Completed || got.Priority != domain.PriorityHigh {
		t.Fatalf("omitted fields changed: %+v", got)
	}
	if got.Description != "patched" {
		t.Fatalf("description not applied: %q", got.Description)
	}

	// Explicit false on completed must stick after toggling on.
	done := true
	if _, err := todos.Update(ctx, ownerA, created.ID, UpdateTodoRequest{Completed: &done}); err != nil {
		t.Fatalf("update: %v", err)
	}
	undone := false
	got, err = todos.Update(ctx, ownerA, created.ID, UpdateTodoRequest{Completed: &undone})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Completed {
		t.Fatal("explicit false did not overwrite completed")
	}
}

func TestTodoUpdateRejectsEmptyTitle(t *testing.T) {
	todos, ids := newTestTodoService(t, ownerA)
	ctx := context.Background()

	created, err := todos.Create(ctx, ownerA, CreateTodoRequest{Title: "t1", ProjectID: ids[0]})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	empty := ""
	_, err = todos.Update(ctx, ownerA, created.ID, UpdateTodoRequest{Title: &empty})
	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("expected validation error, got %v", err)
	}

	got, err := todos.Get(ctx, ownerA, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "t1" {
		t.Fatalf("rejected update mutated title to %q", got.Title)
	}
}

func TestTodoDeleteMissing(t *testing.T) {
	todos, _ := newTestTodoService(t, ownerA)

	if err := todos.Delete(context.Background(), ownerA, 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
