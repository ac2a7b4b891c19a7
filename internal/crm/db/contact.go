package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/kolab/crm/internal/crm/models"
)

func (r *Repository) GetContact(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	result := r.db.WithContext(ctx).Preload("Company").First(&contact, "id = ?", id)
	if result.Error != nil {
		return nil, notFound(result.Error)
	}
	return &contact, nil
}

func (r *Repository) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	result := r.db.WithContext(ctx).Preload("Company").Find(&contacts)
	return contacts, result.Error
}

func (r *Repository) ListContactsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Contact, error) {
	var contacts []models.Contact
	result := r.db.WithContext(ctx).Preload("Company").
		Where("company_id = ?", companyID).
		Find(&contacts)
	return contacts, result.Error
}

func (r *Repository) ContactExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&models.Contact{}).
		Where("email = ?", email).
		Limit(1).
		Count(&count)
	return count > 0, result.Error
}

func (r *Repository) SaveContact(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	if err := r.save(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (r *Repository) DeleteContact(ctx context.Context, id uuid.UUID) error {
	return r.deleteByID(ctx, &models.Contact{}, id)
}
