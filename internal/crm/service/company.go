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

// CompanyRepository defines the storage interface for Company records plus
// the industry lookup companies resolve their reference against.
type CompanyRepository interface {
	GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListCompanies(ctx context.Context) ([]models.Company, error)
	CompanyExistsByName(ctx context.Context, name string) (bool, error)
	SaveCompany(ctx context.Context, company *models.Company) (*models.Company, error)
	DeleteCompany(ctx context.Context, id uuid.UUID) error
	GetIndustry(ctx context.Context, id uuid.UUID) (*models.Industry, error)
}

// CompanyService manages companies. Company names are unique; every company
// references an existing industry.
type CompanyService struct {
	repo     CompanyRepository
	producer EventProducer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewCompanyService(repo CompanyRepository, producer EventProducer, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("company_service"),
	}
}

func (s *CompanyService) Create(ctx context.Context, candidate *models.CompanyCandidate) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	industry, err := resolver.Required(ctx, "industryId", candidate.IndustryID, s.repo.GetIndustry)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.CompanyExistsByName(ctx, candidate.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check name existence: %w", err)
	}
	if exists {
		return nil, e.Duplicate("name", candidate.Name)
	}
	if err := validation.Company(candidate); err != nil {
		return nil, err
	}

	company := &models.Company{
		IndustryID:          industry.ID,
		Industry:            industry,
		Name:                candidate.Name,
		Categorization:      candidate.Categorization,
		BudgetPlanningMonth: candidate.BudgetPlanningMonth,
		Country:             candidate.Country,
		Zip:                 *candidate.Zip,
		City:                candidate.City,
		Address:             candidate.Address,
		WebLink:             candidate.WebLink,
		Description:         candidate.Description,
		ContactInFuture:     candidate.ContactInFuture,
	}
	created, err := s.repo.SaveCompany(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	go func() {
		s.producer.Produce("company", events.ActionCreated, created.ID, created)
	}()
	return created, nil
}

func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, candidate *models.CompanyCandidate) (*models.Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	industry, err := resolver.Required(ctx, "industryId", candidate.IndustryID, s.repo.GetIndustry)
	if err != nil {
		return nil, err
	}

	if candidate.Name != existing.Name {
		exists, err := s.repo.CompanyExistsByName(ctx, candidate.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check name existence: %w", err)
		}
		if exists {
			return nil, e.Duplicate("name", candidate.Name)
		}
	}
	if err := validation.Company(candidate); err != nil {
		return nil, err
	}

	existing.IndustryID = industry.ID
	existing.Industry = industry
	existing.Name = candidate.Name
	existing.Categorization = candidate.Categorization
	existing.BudgetPlanningMonth = candidate.BudgetPlanningMonth
	existing.Country = candidate.Country
	existing.Zip = *candidate.Zip
	existing.City = candidate.City
	existing.Address = candidate.Address
	existing.WebLink = candidate.WebLink
	existing.Description = candidate.Description
	existing.ContactInFuture = candidate.ContactInFuture

	updated, err := s.repo.SaveCompany(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update company: %w", err)
	}
	go func() {
		s.producer.Produce("company", events.ActionUpdated, updated.ID, updated)
	}()
	return updated, nil
}

// Delete removes a company. Contacts and collaborations referencing it are
// left in place with their stored identifiers; there is no cascade.
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	company, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get company for deletion: %w", err)
	}
	if err := s.repo.DeleteCompany(ctx, id); err != nil {
		return fmt.Errorf("failed to delete company: %w", err)
	}
	go func() {
		s.producer.Produce("company", events.ActionDeleted, company.ID, company)
	}()
	return nil
}

func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	company, err := s.repo.GetCompany(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	return s.repo.ListCompanies(ctx)
}
