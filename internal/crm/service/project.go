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

// ProjectRepository defines the storage interface for Project records plus
// the category and user lookups projects resolve their references against.
type ProjectRepository interface {
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context) ([]models.Project, error)
	ListProjectsByResponsible(ctx context.Context, userID uuid.UUID) ([]models.Project, error)
	ProjectExistsByName(ctx context.Context, name string) (bool, error)
	SaveProject(ctx context.Context, project *models.Project) (*models.Project, error)
	DeleteProject(ctx context.Context, id uuid.UUID) error
	GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ProjectService manages projects. Project names are unique; every project
// references an existing category and a responsible user.
type ProjectService struct {
	repo     ProjectRepository
	producer EventProducer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewProjectService(repo ProjectRepository, producer EventProducer, logger *zap.Logger) *ProjectService {
	return &ProjectService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("project_service"),
	}
}

// resolveRefs resolves the project's references in declared order: category
// first, then the responsible user.
func (s *ProjectService) resolveRefs(ctx context.Context, candidate *models.ProjectCandidate) (*models.Category, *models.User, error) {
	category, err := resolver.Required(ctx, "categoryId", candidate.CategoryID, s.repo.GetCategory)
	if err != nil {
		return nil, nil, err
	}
	responsible, err := resolver.Required(ctx, "responsibleId", candidate.ResponsibleID, s.repo.GetUser)
	if err != nil {
		return nil, nil, err
	}
	return category, responsible, nil
}

func (s *ProjectService) Create(ctx context.Context, candidate *models.ProjectCandidate) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category, responsible, err := s.resolveRefs(ctx, candidate)
	if err != nil {
		return nil, err
	}

	exists, err := s.repo.ProjectExistsByName(ctx, candidate.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check name existence: %w", err)
	}
	if exists {
		return nil, e.Duplicate("name", candidate.Name)
	}
	if err := validation.Project(candidate); err != nil {
		return nil, err
	}

	project := &models.Project{
		CategoryID:    category.ID,
		Category:      category,
		Name:          candidate.Name,
		Type:          candidate.Type,
		StartDate:     *candidate.StartDate,
		EndDate:       candidate.EndDate,
		Goal:          candidate.Goal,
		ResponsibleID: responsible.ID,
		Responsible:   responsible,
	}
	created, err := s.repo.SaveProject(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	go func() {
		s.producer.Produce("project", events.ActionCreated, created.ID, created)
	}()
	return created, nil
}

func (s *ProjectService) Update(ctx context.Context, id uuid.UUID, candidate *models.ProjectCandidate) (*models.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	category, responsible, err := s.resolveRefs(ctx, candidate)
	if err != nil {
		return nil, err
	}

	if candidate.Name != existing.Name {
		exists, err := s.repo.ProjectExistsByName(ctx, candidate.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to check name existence: %w", err)
		}
		if exists {
			return nil, e.Duplicate("name", candidate.Name)
		}
	}
	if err := validation.Project(candidate); err != nil {
		return nil, err
	}

	existing.CategoryID = category.ID
	existing.Category = category
	existing.Name = candidate.Name
	existing.Type = candidate.Type
	existing.StartDate = *candidate.StartDate
	existing.EndDate = candidate.EndDate
	existing.Goal = candidate.Goal
	existing.ResponsibleID = responsible.ID
	existing.Responsible = responsible

	updated, err := s.repo.SaveProject(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	go func() {
		s.producer.Produce("project", events.ActionUpdated, updated.ID, updated)
	}()
	return updated, nil
}

// Delete removes a project. Collaborations referencing it stay in place.
func (s *ProjectService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get project for deletion: %w", err)
	}
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	go func() {
		s.producer.Produce("project", events.ActionDeleted, project.ID, project)
	}()
	return nil
}

func (s *ProjectService) GetByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.repo.GetProject(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (s *ProjectService) List(ctx context.Context) ([]models.Project, error) {
	return s.repo.ListProjects(ctx)
}

// ListByResponsible returns the projects one user is responsible for.
func (s *ProjectService) ListByResponsible(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	return s.repo.ListProjectsByResponsible(ctx, userID)
}
