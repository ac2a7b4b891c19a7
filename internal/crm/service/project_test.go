package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	e "github.com/kolab/crm/internal/crm/errors"
	"github.com/kolab/crm/internal/crm/models"
)

// MockProjectRepository implements ProjectRepository for testing
type MockProjectRepository struct {
	getProject                func(context.Context, uuid.UUID) (*models.Project, error)
	listProjects              func(context.Context) ([]models.Project, error)
	listProjectsByResponsible func(context.Context, uuid.UUID) ([]models.Project, error)
	projectExistsByName       func(context.Context, string) (bool, error)
	saveProject               func(context.Context, *models.Project) (*models.Project, error)
	deleteProject             func(context.Context, uuid.UUID) error
	getCategory               func(context.Context, uuid.UUID) (*models.Category, error)
	getUser                   func(context.Context, uuid.UUID) (*models.User, error)
}

func (m *MockProjectRepository) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	return m.getProject(ctx, id)
}

func (m *MockProjectRepository) ListProjects(ctx context.Context) ([]models.Project, error) {
	return m.listProjects(ctx)
}

func (m *MockProjectRepository) ListProjectsByResponsible(ctx context.Context, userID uuid.UUID) ([]models.Project, error) {
	return m.listProjectsByResponsible(ctx, userID)
}

func (m *MockProjectRepository) ProjectExistsByName(ctx context.Context, name string) (bool, error) {
	return m.projectExistsByName(ctx, name)
}

func (m *MockProjectRepository) SaveProject(ctx context.Context, project *models.Project) (*models.Project, error) {
	return m.saveProject(ctx, project)
}

func (m *MockProjectRepository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	return m.deleteProject(ctx, id)
}

func (m *MockProjectRepository) GetCategory(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	return m.getCategory(ctx, id)
}

func (m *MockProjectRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.getUser(ctx, id)
}

func TestProjectService_Create(t *testing.T) {
	categoryID := uuid.New()
	responsibleID := uuid.New()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	validCandidate := func() *models.ProjectCandidate {
		return &models.ProjectCandidate{
			CategoryID:    uuidPtr(categoryID),
			Name:          "Donor Outreach",
			Type:          models.ProjectExternal,
			StartDate:     &start,
			ResponsibleID: uuidPtr(responsibleID),
		}
	}

	baseRepo := func() *MockProjectRepository {
		return &MockProjectRepository{
			getCategory: func(_ context.Context, id uuid.UUID) (*models.Category, error) {
				if id == categoryID {
					return &models.Category{ID: categoryID, Name: "Fundraising"}, nil
				}
				return nil, e.ErrNotFound
			},
			getUser: func(_ context.Context, id uuid.UUID) (*models.User, error) {
				if id == responsibleID {
					return &models.User{ID: responsibleID, Email: "lead@example.com"}, nil
				}
				return nil, e.ErrNotFound
			},
			projectExistsByName: func(context.Context, string) (bool, error) {
				return false, nil
			},
			saveProject: func(_ context.Context, project *models.Project) (*models.Project, error) {
				project.ID = uuid.New()
				return project, nil
			},
		}
	}

	t.Run("successful creation resolves both references", func(t *testing.T) {
		mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
		mockProducer.wg.Add(1)
		service := NewProjectService(baseRepo(), mockProducer, zaptest.NewLogger(t))

		created, err := service.Create(context.Background(), validCandidate())
		require.NoError(t, err)
		mockProducer.wg.Wait()

		assert.Equal(t, categoryID, created.CategoryID)
		assert.Equal(t, responsibleID, created.ResponsibleID)
		require.NotNil(t, created.Category)
		require.NotNil(t, created.Responsible)
	})

	t.Run("missing category reference", func(t *testing.T) {
		service := NewProjectService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		candidate := validCandidate()
		candidate.CategoryID = nil
		_, err := service.Create(context.Background(), candidate)

		assert.ErrorIs(t, err, e.ErrMissingReference)
		fe, ok := e.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "categoryId", fe.Field)
	})

	t.Run("category failure reported before responsible failure", func(t *testing.T) {
		service := NewProjectService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		candidate := validCandidate()
		candidate.CategoryID = nil
		candidate.ResponsibleID = nil
		_, err := service.Create(context.Background(), candidate)

		fe, ok := e.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "categoryId", fe.Field)
	})

	t.Run("unknown responsible user", func(t *testing.T) {
		service := NewProjectService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		candidate := validCandidate()
		candidate.ResponsibleID = uuidPtr(uuid.New())
		_, err := service.Create(context.Background(), candidate)

		assert.ErrorIs(t, err, e.ErrInvalidReference)
		fe, ok := e.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "responsibleId", fe.Field)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := baseRepo()
		repo.projectExistsByName = func(context.Context, string) (bool, error) {
			return true, nil
		}
		service := NewProjectService(repo, &MockProducer{}, zaptest.NewLogger(t))

		_, err := service.Create(context.Background(), validCandidate())

		assert.ErrorIs(t, err, e.ErrDuplicateValue)
	})

	t.Run("missing start date", func(t *testing.T) {
		service := NewProjectService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		candidate := validCandidate()
		candidate.StartDate = nil
		_, err := service.Create(context.Background(), candidate)

		assert.ErrorIs(t, err, e.ErrValidation)
	})
}

func TestProjectService_ListByResponsible(t *testing.T) {
	responsibleID := uuid.New()
	repo := &MockProjectRepository{
		listProjectsByResponsible: func(_ context.Context, userID uuid.UUID) ([]models.Project, error) {
			assert.Equal(t, responsibleID, userID)
			return []models.Project{{ID: uuid.New(), Name: "Donor Outreach"}}, nil
		},
	}
	service := NewProjectService(repo, &MockProducer{}, zaptest.NewLogger(t))

	projects, err := service.ListByResponsible(context.Background(), responsibleID)
	require.NoError(t, err)
	assert.Len(t, projects, 1)
}
