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

// CollaborationRepository defines the storage interface for Collaboration
// records plus the lookups for every entity type a collaboration references.
type CollaborationRepository interface {
	GetCollaboration(ctx context.Context, id uuid.UUID) (*models.Collaboration, error)
	ListCollaborations(ctx context.Context) ([]models.Collaboration, error)
	ListCollaborationsByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Collaboration, error)
	ListCollaborationsByProject(ctx context.Context, projectID uuid.UUID) ([]models.Collaboration, error)
	ListCollaborationsByResponsible(ctx context.Context, userID uuid.UUID) ([]models.Collaboration, error)
	SaveCollaboration(ctx context.Context, collaboration *models.Collaboration) (*models.Collaboration, error)
	DeleteCollaboration(ctx context.Context, id uuid.UUID) error
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	GetContact(ctx context.Context, id uuid.UUID) (*models.Contact, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// CollaborationService manages the records linking projects and companies.
// It coordinates four referenced entity types; project and company are
// required, contact and responsible user are optional.
type CollaborationService struct {
	repo     CollaborationRepository
	producer EventProducer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewCollaborationService(repo CollaborationRepository, producer EventProducer, logger *zap.Logger) *CollaborationService {
	return &CollaborationService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("collaboration_service"),
	}
}

type collaborationRefs struct {
	project     *models.Project
	company     *models.Company
	contact     *models.Contact
	responsible *models.User
}

// resolveRefs resolves references in declared order -- project, company,
// contact, responsible -- so the first invalid one is the one reported.
func (s *CollaborationService) resolveRefs(ctx context.Context, candidate *models.CollaborationCandidate) (*collaborationRefs, error) {
	project, err := resolver.Required(ctx, "projectId", candidate.ProjectID, s.repo.GetProject)
	if err != nil {
		return nil, err
	}
	company, err := resolver.Required(ctx, "companyId", candidate.CompanyID, s.repo.GetCompany)
	if err != nil {
		return nil, err
	}
	contact, err := resolver.Optional(ctx, "contactId", candidate.ContactID, s.repo.GetContact)
	if err != nil {
		return nil, err
	}
	responsible, err := resolver.Optional(ctx, "responsibleId", candidate.ResponsibleID, s.repo.GetUser)
	if err != nil {
		return nil, err
	}
	return &collaborationRefs{
		project:     project,
		company:     company,
		contact:     contact,
		responsible: responsible,
	}, nil
}

func (s *CollaborationService) Create(ctx context.Context, candidate *models.CollaborationCandidate) (*models.Collaboration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	refs, err := s.resolveRefs(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if err := validation.Collaboration(candidate); err != nil {
		return nil, err
	}

	collaboration := &models.Collaboration{
		ProjectID:     refs.project.ID,
		Project:       refs.project,
		CompanyID:     refs.company.ID,
		Company:       refs.company,
		Category:      candidate.Category,
		Status:        candidate.Status,
		Comment:       candidate.Comment,
		AchievedValue: candidate.AchievedValue,
	}
	if refs.contact != nil {
		collaboration.ContactID = &refs.contact.ID
		collaboration.Contact = refs.contact
	}
	if refs.responsible != nil {
		collaboration.ResponsibleID = &refs.responsible.ID
		collaboration.Responsible = refs.responsible
	}

	created, err := s.repo.SaveCollaboration(ctx, collaboration)
	if err != nil {
		return nil, fmt.Errorf("failed to create collaboration: %w", err)
	}
	go func() {
		s.producer.Produce("collaboration", events.ActionCreated, created.ID, created)
	}()
	return created, nil
}

func (s *CollaborationService) Update(ctx context.Context, id uuid.UUID, candidate *models.CollaborationCandidate) (*models.Collaboration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetCollaboration(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get collaboration: %w", err)
	}

	refs, err := s.resolveRefs(ctx, candidate)
	if err != nil {
		return nil, err
	}
	if err := validation.Collaboration(candidate); err != nil {
		return nil, err
	}

	existing.ProjectID = refs.project.ID
	existing.Project = refs.project
	existing.CompanyID = refs.company.ID
	existing.Company = refs.company
	existing.ContactID = nil
	existing.Contact = nil
	if refs.contact != nil {
		existing.ContactID = &refs.contact.ID
		existing.Contact = refs.contact
	}
	existing.ResponsibleID = nil
	existing.Responsible = nil
	if refs.responsible != nil {
		existing.ResponsibleID = &refs.responsible.ID
		existing.Responsible = refs.responsible
	}
	existing.Category = candidate.Category
	existing.Status = candidate.Status
	existing.Comment = candidate.Comment
	existing.AchievedValue = candidate.AchievedValue

	updated, err := s.repo.SaveCollaboration(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update collaboration: %w", err)
	}
	go func() {
		s.producer.Produce("collaboration", events.ActionUpdated, updated.ID, updated)
	}()
	return updated, nil
}

func (s *CollaborationService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collaboration, err := s.repo.GetCollaboration(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get collaboration for deletion: %w", err)
	}
	if err := s.repo.DeleteCollaboration(ctx, id); err != nil {
		return fmt.Errorf("failed to delete collaboration: %w", err)
	}
	go func() {
		s.producer.Produce("collaboration", events.ActionDeleted, collaboration.ID, collaboration)
	}()
	return nil
}

func (s *CollaborationService) GetByID(ctx context.Context, id uuid.UUID) (*models.Collaboration, error) {
	collaboration, err := s.repo.GetCollaboration(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get collaboration: %w", err)
	}
	return collaboration, nil
}

func (s *CollaborationService) List(ctx context.Context) ([]models.Collaboration, error) {
	return s.repo.ListCollaborations(ctx)
}

func (s *CollaborationService) ListByCompany(ctx context.Context, companyID uuid.UUID) ([]models.Collaboration, error) {
	return s.repo.ListCollaborationsByCompany(ctx, companyID)
}

func (s *CollaborationService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]models.Collaboration, error) {
	return s.repo.ListCollaborationsByProject(ctx, projectID)
}

func (s *CollaborationService) ListByResponsible(ctx context.Context, userID uuid.UUID) ([]models.Collaboration, error) {
	return s.repo.ListCollaborationsByResponsible(ctx, userID)
}
