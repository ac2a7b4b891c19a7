package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	e "github.com/kolab/crm/internal/crm/errors"
	"github.com/kolab/crm/internal/crm/models"
)

// MockCompanyRepository implements CompanyRepository for testing
type MockCompanyRepository struct {
	getCompany          func(context.Context, uuid.UUID) (*models.Company, error)
	listCompanies       func(context.Context) ([]models.Company, error)
	companyExistsByName func(context.Context, string) (bool, error)
	saveCompany         func(context.Context, *models.Company) (*models.Company, error)
	deleteCompany       func(context.Context, uuid.UUID) error
	getIndustry         func(context.Context, uuid.UUID) (*models.Industry, error)
}

func (m *MockCompanyRepository) GetCompany(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	return m.getCompany(ctx, id)
}

func (m *MockCompanyRepository) ListCompanies(ctx context.Context) ([]models.Company, error) {
	return m.listCompanies(ctx)
}

func (m *MockCompanyRepository) CompanyExistsByName(ctx context.Context, name string) (bool, error) {
	return m.companyExistsByName(ctx, name)
}

func (m *MockCompanyRepository) SaveCompany(ctx context.Context, company *models.Company) (*models.Company, error) {
	return m.saveCompany(ctx, company)
}

func (m *MockCompanyRepository) DeleteCompany(ctx context.Context, id uuid.UUID) error {
	return m.deleteCompany(ctx, id)
}

func (m *MockCompanyRepository) GetIndustry(ctx context.Context, id uuid.UUID) (*models.Industry, error) {
	return m.getIndustry(ctx, id)
}

func validCompanyCandidate(industryID uuid.UUID) *models.CompanyCandidate {
	zip := int64(10000)
	return &models.CompanyCandidate{
		IndustryID:     uuidPtr(industryID),
		Name:           "FinCorp",
		Categorization: models.CategorizationA,
		Country:        "Croatia",
		Zip:            &zip,
		City:           "Zagreb",
	}
}

func TestCompanyService_Create(t *testing.T) {
	industryID := uuid.New()
	industry := &models.Industry{ID: industryID, Name: "Finance"}

	baseRepo := func() *MockCompanyRepository {
		return &MockCompanyRepository{
			getIndustry: func(_ context.Context, id uuid.UUID) (*models.Industry, error) {
				if id == industryID {
					return industry, nil
				}
				return nil, e.ErrNotFound
			},
			companyExistsByName: func(context.Context, string) (bool, error) {
				return false, nil
			},
			saveCompany: func(_ context.Context, company *models.Company) (*models.Company, error) {
				company.ID = uuid.New()
				return company, nil
			},
		}
	}

	t.Run("successful creation resolves the industry", func(t *testing.T) {
		mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
		mockProducer.wg.Add(1)
		service := NewCompanyService(baseRepo(), mockProducer, zaptest.NewLogger(t))

		created, err := service.Create(context.Background(), validCompanyCandidate(industryID))
		require.NoError(t, err)
		mockProducer.wg.Wait()

		assert.Equal(t, industryID, created.IndustryID)
		require.NotNil(t, created.Industry)
		assert.Equal(t, "Finance", created.Industry.Name)
	})

	t.Run("missing industry reference", func(t *testing.T) {
		service := NewCompanyService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		candidate := validCompanyCandidate(industryID)
		candidate.IndustryID = nil
		_, err := service.Create(context.Background(), candidate)

		assert.ErrorIs(t, err, e.ErrMissingReference)
		fe, ok := e.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "industryId", fe.Field)
	})

	t.Run("unknown industry reference", func(t *testing.T) {
		service := NewCompanyService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		_, err := service.Create(context.Background(), validCompanyCandidate(uuid.New()))

		assert.ErrorIs(t, err, e.ErrInvalidReference)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := baseRepo()
		repo.companyExistsByName = func(context.Context, string) (bool, error) {
			return true, nil
		}
		service := NewCompanyService(repo, &MockProducer{}, zaptest.NewLogger(t))

		_, err := service.Create(context.Background(), validCompanyCandidate(industryID))

		assert.ErrorIs(t, err, e.ErrDuplicateValue)
	})

	t.Run("reference failure reported before validation failure", func(t *testing.T) {
		service := NewCompanyService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		candidate := validCompanyCandidate(industryID)
		candidate.IndustryID = nil
		candidate.Name = "" // also invalid, but the reference comes first
		_, err := service.Create(context.Background(), candidate)

		assert.ErrorIs(t, err, e.ErrMissingReference)
	})

	t.Run("validation failure", func(t *testing.T) {
		service := NewCompanyService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		candidate := validCompanyCandidate(industryID)
		candidate.Zip = nil
		_, err := service.Create(context.Background(), candidate)

		assert.ErrorIs(t, err, e.ErrValidation)
		fe, ok := e.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "zip", fe.Field)
	})
}

func TestCompanyService_Update(t *testing.T) {
	industryID := uuid.New()
	industry := &models.Industry{ID: industryID, Name: "Finance"}
	companyID := uuid.New()

	baseRepo := func() *MockCompanyRepository {
		return &MockCompanyRepository{
			getCompany: func(_ context.Context, id uuid.UUID) (*models.Company, error) {
				if id != companyID {
					return nil, e.ErrNotFound
				}
				return &models.Company{
					ID:             companyID,
					IndustryID:     industryID,
					Name:           "FinCorp",
					Categorization: models.CategorizationA,
					Country:        "Croatia",
					Zip:            10000,
					City:           "Zagreb",
				}, nil
			},
			getIndustry: func(_ context.Context, id uuid.UUID) (*models.Industry, error) {
				if id == industryID {
					return industry, nil
				}
				return nil, e.ErrNotFound
			},
			companyExistsByName: func(context.Context, string) (bool, error) {
				return false, nil
			},
			saveCompany: func(_ context.Context, company *models.Company) (*models.Company, error) {
				return company, nil
			},
		}
	}

	t.Run("replaces fields and keeps the id", func(t *testing.T) {
		mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
		mockProducer.wg.Add(1)
		service := NewCompanyService(baseRepo(), mockProducer, zaptest.NewLogger(t))

		candidate := validCompanyCandidate(industryID)
		candidate.City = "Split"
		candidate.Description = "" // clearing a field is a real update

		updated, err := service.Update(context.Background(), companyID, candidate)
		require.NoError(t, err)
		mockProducer.wg.Wait()

		assert.Equal(t, companyID, updated.ID)
		assert.Equal(t, "Split", updated.City)
		assert.Empty(t, updated.Description)
	})

	t.Run("unknown id", func(t *testing.T) {
		service := NewCompanyService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		_, err := service.Update(context.Background(), uuid.New(), validCompanyCandidate(industryID))

		assert.ErrorIs(t, err, e.ErrNotFound)
	})

	t.Run("rename onto another company", func(t *testing.T) {
		repo := baseRepo()
		repo.companyExistsByName = func(context.Context, string) (bool, error) {
			return true, nil
		}
		service := NewCompanyService(repo, &MockProducer{}, zaptest.NewLogger(t))

		candidate := validCompanyCandidate(industryID)
		candidate.Name = "OtherCorp"
		_, err := service.Update(context.Background(), companyID, candidate)

		assert.ErrorIs(t, err, e.ErrDuplicateValue)
	})

	t.Run("keeping own name passes even though it is taken", func(t *testing.T) {
		repo := baseRepo()
		repo.companyExistsByName = func(context.Context, string) (bool, error) {
			return true, nil // own row is in the index
		}
		mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
		mockProducer.wg.Add(1)
		service := NewCompanyService(repo, mockProducer, zaptest.NewLogger(t))

		_, err := service.Update(context.Background(), companyID, validCompanyCandidate(industryID))
		require.NoError(t, err)
		mockProducer.wg.Wait()
	})

	t.Run("switching industry to an unknown one", func(t *testing.T) {
		service := NewCompanyService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		_, err := service.Update(context.Background(), companyID, validCompanyCandidate(uuid.New()))

		assert.ErrorIs(t, err, e.ErrInvalidReference)
	})
}

func TestCompanyService_DeleteDoesNotCascade(t *testing.T) {
	companyID := uuid.New()
	var deletedIDs []uuid.UUID
	repo := &MockCompanyRepository{
		getCompany: func(context.Context, uuid.UUID) (*models.Company, error) {
			return &models.Company{ID: companyID, Name: "FinCorp"}, nil
		},
		deleteCompany: func(_ context.Context, id uuid.UUID) error {
			deletedIDs = append(deletedIDs, id)
			return nil
		},
	}
	mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
	mockProducer.wg.Add(1)
	service := NewCompanyService(repo, mockProducer, zaptest.NewLogger(t))

	require.NoError(t, service.Delete(context.Background(), companyID))
	mockProducer.wg.Wait()

	// Only the company row itself goes; dependent records stay.
	assert.Equal(t, []uuid.UUID{companyID}, deletedIDs)
}
