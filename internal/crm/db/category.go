package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/kolab/crm/internal/crm/models"
)

func (r *Repository) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	result := r.db.WithContext(ctx).First(&category, "id = ?", id)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}
	return &category, nil
}

func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	result := r.db.WithContext(ctx).Find(&categories)
	return categories, result.Error
}

func (r *Repository) SaveCategory(ctx context.Context, category *models.Category) (*models.Category, error) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	if err := r.save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, &models.Category{}, id)
}
