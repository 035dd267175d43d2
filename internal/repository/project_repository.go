package repository

import (
	"context"
	"errors"

	"projecthub-backend/internal/domain"

	"gorm.io/gorm"
)

// ProjectRepository defines the interface for project data operations.
// Every query carries the owner id so a caller can never reach another
// owner's rows.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Project, error)
	FindAllByOwner(ctx context.Context, ownerID uint) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id, ownerID uint) error
}

// gormProjectRepository implements ProjectRepository using GORM
type gormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GORM project repository
func NewGormProjectRepository(db *gorm.DB) ProjectRepository {
	return &gormProjectRepository{db: db}
}

// Create adds a new project to the database
func (r *gormProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// FindByIDAndOwner retrieves a project by id, constrained to the owner
func (r *gormProjectRepository) FindByIDAndOwner(ctx context.Context, id, ownerID uint) (*domain.Project, error) {
	var project domain.Project
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&project)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &project, nil
}

// FindAllByOwner retrieves all projects belonging to the owner, newest first
func (r *gormProjectRepository) FindAllByOwner(ctx context.Context, ownerID uint) ([]domain.Project, error) {
	var projects []domain.Project
	result := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&projects)
	if result.Error != nil {
		return nil, result.Error
	}
	return projects, nil
}

// Update saves an existing project
func (r *gormProjectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project by id, constrained to the owner. Deleting a row
// that does not exist or belongs to someone else reports ErrNotFound.
func (r *gormProjectRepository) Delete(ctx context.Context, id, ownerID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Delete(&domain.Project{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
