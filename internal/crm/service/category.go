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

// CategoryRepository defines the storage interface for Category records.
type CategoryRepository interface {
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	SaveCategory(ctx context.Context, category *models.Category) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// CategoryService manages project categories. Category names carry no
// uniqueness constraint.
type CategoryService struct {
	repo     CategoryRepository
	producer EventProducer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewCategoryService(repo CategoryRepository, producer EventProducer, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("category_service"),
	}
}

func (s *CategoryService) Create(ctx context.Context, candidate *models.CategoryCandidate) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validation.Category(candidate); err != nil {
		return nil, err
	}
	created, err := s.repo.SaveCategory(ctx, &models.Category{Name: candidate.Name})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	go func() {
		s.producer.Produce("category", events.ActionCreated, created.ID, created)
	}()
	return created, nil
}

func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, candidate *models.CategoryCandidate) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	if err := validation.Category(candidate); err != nil {
		return nil, err
	}

	existing.Name = candidate.Name
	updated, err := s.repo.SaveCategory(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	go func() {
		s.producer.Produce("category", events.ActionUpdated, updated.ID, updated)
	}()
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get category for deletion: %w", err)
	}
	if err := s.repo.DeleteCategory(ctx, id); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	go func() {
		s.producer.Produce("category", events.ActionDeleted, category.ID, category)
	}()
	return nil
}

func (s *CategoryService) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	category, err := s.repo.GetCategory(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return category, nil
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return s.repo.ListCategories(ctx)
}
