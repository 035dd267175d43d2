package repository

import (
	"context"
	"errors"
	"testing"

	"projecthub-backend/internal/domain"
)

func TestMemoryProjectDeleteCascades(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	project := &domain.Project{Name: "p", OwnerID: 1}
	if err := mem.Projects().Create(ctx, project); err != nil {
		t.Fatalf("create project: %v", err)
	}
	todo := &domain.Todo{Title: "t", Priority: domain.PriorityMedium, ProjectID: project.ID}
	if err := mem.Todos().Create(ctx, todo); err != nil {
		t.Fatalf("create todo: %v", err)
	}

	if err := mem.Projects().Delete(ctx, project.ID, 1); err != nil {
		t.Fatalf("delete project: %v", err)
	}
	if _, err := mem.Todos().FindByID(ctx, todo.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected cascade to remove todo, got %v", err)
	}
}

func TestMemoryListNewestFirst(t *testing.T) {
	mem := NewMemory()
	ctx := context.Background()

	first := &domain.Project{Name: "first", OwnerID: 1}
	second := &domain.Project{Name: "second", OwnerID: 1}
	if err := mem.Projects().Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := mem.Projects().Create(ctx, second); err != nil {
		t.Fatalf("create: %v", err)
	}

	list, err := mem.Projects().FindAllByOwner(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].Name != "second" {
		t.Fatalf("expected newest first, got %+v", list)
	}
}
