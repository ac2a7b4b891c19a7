package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/kolab/crm/internal/crm/models"
)

func (r *Repository) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	result := r.db.WithContext(ctx).Preload("Category").Preload("Responsible").
		First(&project, "id = ?", id)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}
	return &project, nil
}

func (r *Repository) ListProjects(ctx context.Context) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.WithContext(ctx).Preload("Category").Preload("Responsible").
		Find(&projects)
	return projects, result.Error
}

func (r *Repository) ListProjectsByResponsible(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	result := r.db.WithContext(ctx).Preload("Category").Preload("Responsible").
		Where("responsible_id = ?", userID).
		Find(&projects)
	return projects, result.Error
}

func (r *Repository) ProjectExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Project{}).
		Where("name = ?", name).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

func (r *Repository) SaveProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	if err := r.save(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (r *Repository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, &models.Project{}, id)
}
