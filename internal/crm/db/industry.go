package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/kolab/crm/internal/crm/models"
)

func (r *Repository) GetIndustry(ctx context.Context, id uuid.UUID) (*models.Industry, error) {
	var industry models.Industry
	result := r.db.WithContext(ctx).First(&industry, "id = ?", id)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}
	return &industry, nil
}

func (r *Repository) ListIndustries(ctx context.Context) ([]models.Industry, error) {
	var industries []models.Industry
	result := r.db.WithContext(ctx).Find(&industries)
	return industries, result.Error
}

func (r *Repository) IndustryExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Industry{}).
		Where("name = ?", name).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

func (r *Repository) SaveIndustry(ctx context.Context, industry *models.Industry) (*models.Industry, error) {
	if industry.ID == uuid.Nil {
		industry.ID = uuid.New()
	}
	if err := r.save(ctx, industry); err != nil {
		return nil, err
	}
	return industry, nil
}

func (r *Repository) DeleteIndustry(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, &models.Industry{}, id)
}
