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
	"github.com/kolab/crm/internal/crm/validation"
)

// IndustryRepository defines the storage interface for Industry records.
type IndustryRepository interface {
	GetIndustry(ctx context.Context, id uuid.UUID) (*models.Industry, error)
	ListIndustries(ctx context.Context) ([]models.Industry, error)
	IndustryExistsByName(ctx context.Context, name string) (bool, error)
	SaveIndustry(ctx context.Context, industry *models.Industry) (*models.Industry, error)
	DeleteIndustry(ctx context.Context, id uuid.UUID) error
}

// IndustryService manages the industry catalogue.
type IndustryService struct {
	repo     IndustryRepository
	producer EventProducer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewIndustryService(repo IndustryRepository, producer EventProducer, logger *zap.Logger) *IndustryService {
	return &IndustryService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("industry_service"),
	}
}

// Create adds a new industry after checking name uniqueness and validity.
func (s *IndustryService) Create(ctx context.Context, candidate *models.IndustryCandidate) (*models.Industry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.repo.IndustryExistsByName(ctx, candidate.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check name existence: %w", err)
	}
	if exists {
		return nil, e.Duplicate("name", candidate.Name)
	}
	if err := validation.Industry(candidate); err != nil {
		return nil, err
	}

	created, err := s.repo.SaveIndustry(ctx, &models.Industry{Name: candidate.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to create industry: %w", err)
	}
	go func() {
		s.producer.Produce("industry", events.ActionCreated, created.ID, created)
	}()
	return created, nil
}

// Update replaces every mutable field of the stored industry with the
// candidate's values, keeping its identifier.
func (s *IndustryService) Update(ctx context.Context, id uuid.UUID, candidate *models.IndustryCandidate) (*models.Industry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetIndustry(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get industry: %w", err)
	}

	// A record keeping its own name is not a duplicate of itself.
	if candidate.Name != existing.Name {
		exists, err := s.repo.IndustryExistsByName(ctx, candidate.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check name existence: %w", err)
		}
		if exists {
			return nil, e.Duplicate("name", candidate.Name)
		}
	}
	if err := validation.Industry(candidate); err != nil {
		return nil, err
	}

	existing.Name = candidate.Name
	updated, err := s.repo.SaveIndustry(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update industry: %w", err)
	}
	go func() {
		s.producer.Produce("industry", events.ActionUpdated, updated.ID, updated)
	}()
	return updated, nil
}

// Delete removes an industry. Companies referencing it are left untouched.
func (s *IndustryService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	industry, err := s.repo.GetIndustry(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get industry for deletion: %w", err)
	}
	if err := s.repo.DeleteIndustry(ctx, id); err != nil {
		return fmt.Errorf("failed to delete industry: %w", err)
	}
	go func() {
		s.producer.Produce("industry", events.ActionDeleted, industry.ID, industry)
	}()
	return nil
}

func (s *IndustryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Industry, error) {
	industry, err := s.repo.GetIndustry(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get industry: %w", err)
	}
	return industry, nil
}

func (s *IndustryService) List(ctx context.Context) ([]models.Industry, error) {
	return s.repo.ListIndustries(ctx)
}
