package db

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kolab/crm/internal/crm/models"
)

func (r *Repository) collaborations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Project").
		Preload("Company").
		Preload("Contact").
		Preload("Responsible")
}

func (r *Repository) GetCollaboration(ctx context.Context, id uuid.UUID) (*models.Collaboration, error) {
	var collaboration models.Collaboration
	result := r.collaborations(ctx).First(&collaboration, "id = ?", id)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}
	return &collaboration, nil
}

func (r *Repository) ListCollaborations(ctx context.Context) ([]models.Collaboration, error) {
	var collaborations []models.Collaboration
	result := r.collaborations(ctx).Find(&collaborations)
	return collaborations, result.Error
}

func (r *Repository) ListCollaborationsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Collaboration, error) {
	var collaborations []models.Collaboration
	result := r.collaborations(ctx).
		Where("company_id = ?", companyID).
		Find(&collaborations)
	return collaborations, result.Error
}

func (r *Repository) ListCollaborationsByProject(ctx context.Context, projectID uuid.UUID) ([]models.Collaboration, error) {
	var collaborations []models.Collaboration
	result := r.collaborations(ctx).
		Where("project_id = ?", projectID).
		Find(&collaborations)
	return collaborations, result.Error
}

func (r *Repository) ListCollaborationsByResponsible(ctx context.Context, userID uuid.UUID) ([]models.Collaboration, error) {
	var collaborations []models.Collaboration
	result := r.collaborations(ctx).
		Where("responsible_id = ?", userID).
		Find(&collaborations)
	return collaborations, result.Error
}

func (r *Repository) SaveCollaboration(ctx context.Context, collaboration *models.Collaboration) (*models.Collaboration, error) {
	if collaboration.ID == uuid.Nil {
		collaboration.ID = uuid.New()
	}
	if err := r.save(ctx, collaboration); err != nil {
		return nil, err
	}
	return collaboration, nil
}

func (r *Repository) DeleteCollaboration(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, &models.Collaboration{}, id)
}
