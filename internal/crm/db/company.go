package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/kolab/crm/internal/crm/models"
)

func (r *Repository) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	result := r.db.WithContext(ctx).Preload("Industry").First(&company, "id = ?", id)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}
	return &company, nil
}

func (r *Repository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	result := r.db.WithContext(ctx).Preload("Industry").Find(&companies)
	return companies, result.Error
}

func (r *Repository) CompanyExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Company{}).
		Where("name = ?", name).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

func (r *Repository) SaveCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if err := r.save(ctx, company); err != nil {
		return nil, err
	}
	return company, nil
}

func (r *Repository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, &models.Company{}, id)
}
