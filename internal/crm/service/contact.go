package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	e "github.com/kolab/crm/internal/crm/errors"
	"github.com/kolab/crm/internal/crm/events"
	"github.com/kolab/crm/internal/crm/models"
	"github.com/kolab/crm/internal/crm/resolver"
	"github.com/kolab/crm/internal/crm/validation"
)

// ContactRepository defines the storage interface for Contact records plus
// the company lookup contacts resolve their reference against.
type ContactRepository interface {
	GetContact(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	ListContacts(ctx context.Context) ([]models.Contact, error)
	ListContactsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Contact, error)
	ContactExistsByEmail(ctx context.Context, email string) (bool, error)
	SaveContact(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	DeleteContact(ctx context.Context, id uuid.UUID) error
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
}

// ContactService manages company contacts. Contact emails are unique across
// all contacts; every contact belongs to an existing company.
type ContactService struct {
	repo     ContactRepository
	producer EventProducer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewContactService(repo ContactRepository, producer EventProducer, logger *zap.Logger) *ContactService {
	return &ContactService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("contact_service"),
	}
}

func (s *ContactService) Create(ctx context.Context, candidate *models.ContactCandidate) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	company, err := resolver.Required(ctx, "companyId", candidate.CompanyID, s.repo.GetCompany)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ContactExistsByEmail(ctx, candidate.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, e.Duplicate("email", candidate.Email)
	}
	if err := validation.Contact(candidate); err != nil {
		return nil, err
	}

	contact := &models.Contact{
		CompanyID: company.ID,
		Company:   company,
		FirstName: candidate.FirstName,
		LastName:  candidate.LastName,
		Position:  candidate.Position,
		Email:     candidate.Email,
		Phone:     candidate.Phone,
	}
	created, err := s.repo.SaveContact(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	go func() {
		s.producer.Produce("contact", events.ActionCreated, created.ID, created)
	}()
	return created, nil
}

func (s *ContactService) Update(ctx context.Context, id uuid.UUID, candidate *models.ContactCandidate) (*models.Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetContact(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}

	company, err := resolver.Required(ctx, "companyId", candidate.CompanyID, s.repo.GetCompany)
	if err != nil {
		return nil, err
	}

	// Updating a contact without changing its email must not collide with
	// the record itself.
	if candidate.Email != existing.Email {
		exists, err := s.repo.ContactExistsByEmail(ctx, candidate.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			return nil, e.Duplicate("email", candidate.Email)
		}
	}
	if err := validation.Contact(candidate); err != nil {
		return nil, err
	}

	existing.CompanyID = company.ID
	existing.Company = company
	existing.FirstName = candidate.FirstName
	existing.LastName = candidate.LastName
	existing.Position = candidate.Position
	existing.Email = candidate.Email
	existing.Phone = candidate.Phone

	updated, err := s.repo.SaveContact(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	go func() {
		s.producer.Produce("contact", events.ActionUpdated, updated.ID, updated)
	}()
	return updated, nil
}

func (s *ContactService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact, err := s.repo.GetContact(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get contact for deletion: %w", err)
	}
	if err := s.repo.DeleteContact(ctx, id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	go func() {
		s.producer.Produce("contact", events.ActionDeleted, contact.ID, contact)
	}()
	return nil
}

func (s *ContactService) GetByID(ctx context.Context, id uuid.UUID) (*models.Contact, error) {
	contact, err := s.repo.GetContact(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get contact: %w", err)
	}
	return contact, nil
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.repo.ListContacts(ctx)
}

// ListByCompany returns the contacts of one company.
func (s *ContactService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Contact, error) {
	return s.repo.ListContactsByCompany(ctx, companyID)
}
