package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	e "github.com/kolab/crm/internal/crm/errors"
	"github.com/kolab/crm/internal/crm/models"
)

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	getUser           func(context.Context, uuid.UUID) (*models.User, error)
	listUsers         func(context.Context) ([]models.User, error)
	findUserByEmail   func(context.Context, string) (*models.User, error)
	userExistsByEmail func(context.Context, string) (bool, error)
	saveUser          func(context.Context, *models.User) (*models.User, error)
	deleteUser        func(context.Context, uuid.UUID) error
}

func (m *MockUserRepository) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.getUser(ctx, id)
}

func (m *MockUserRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	return m.listUsers(ctx)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findUserByEmail(ctx, email)
}

func (m *MockUserRepository) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	return m.userExistsByEmail(ctx, email)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user *models.User) (*models.User, error) {
	return m.saveUser(ctx, user)
}

func (m *MockUserRepository) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.deleteUser(ctx, id)
}

func validUserCandidate() *models.UserCandidate {
	return &models.UserCandidate{
		Name:          "Ana",
		Surname:       "Horvat",
		Email:         "ana.horvat@example.com",
		Authorization: models.AuthorizationUser,
	}
}

func TestUserService_Create(t *testing.T) {
	baseRepo := func() *MockUserRepository {
		return &MockUserRepository{
			userExistsByEmail: func(context.Context, string) (bool, error) {
				return false, nil
			},
			saveUser: func(_ context.Context, user *models.User) (*models.User, error) {
				user.ID = uuid.New()
				return user, nil
			},
		}
	}

	t.Run("successful creation", func(t *testing.T) {
		mockProducer := &MockProducer{wg: new(sync.WaitGroup)}
		mockProducer.wg.Add(1)
		service := NewUserService(baseRepo(), mockProducer, zaptest.NewLogger(t))

		created, err := service.Create(context.Background(), validUserCandidate())
		require.NoError(t, err)
		mockProducer.wg.Wait()

		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.Equal(t, "ana.horvat@example.com", created.Email)
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := baseRepo()
		repo.userExistsByEmail = func(context.Context, string) (bool, error) {
			return true, nil
		}
		service := NewUserService(repo, &MockProducer{}, zaptest.NewLogger(t))

		_, err := service.Create(context.Background(), validUserCandidate())

		assert.ErrorIs(t, err, e.ErrDuplicateValue)
		fe, ok := e.AsFieldError(err)
		require.True(t, ok)
		assert.Equal(t, "email", fe.Field)
	})

	t.Run("malformed email", func(t *testing.T) {
		service := NewUserService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		candidate := validUserCandidate()
		candidate.Email = "not-an-email"
		_, err := service.Create(context.Background(), candidate)

		assert.ErrorIs(t, err, e.ErrValidation)
	})

	t.Run("unknown authorization level", func(t *testing.T) {
		service := NewUserService(baseRepo(), &MockProducer{}, zaptest.NewLogger(t))

		candidate := validUserCandidate()
		candidate.Authorization = "SUPERUSER"
		_, err := service.Create(context.Background(), candidate)

		assert.ErrorIs(t, err, e.ErrValidation)
	})
}

func TestUserService_FindByEmail(t *testing.T) {
	t.Run("known email", func(t *testing.T) {
		repo := &MockUserRepository{
			findUserByEmail: func(_ context.Context, email string) (*models.User, error) {
				return &models.User{ID: uuid.New(), Email: email}, nil
			},
		}
		service := NewUserService(repo, &MockProducer{}, zaptest.NewLogger(t))

		user, err := service.FindByEmail(context.Background(), "ana.horvat@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "ana.horvat@example.com", user.Email)
	})

	t.Run("unknown email is not an error", func(t *testing.T) {
		repo := &MockUserRepository{
			findUserByEmail: func(context.Context, string) (*models.User, error) {
				return nil, e.ErrNotFound
			},
		}
		service := NewUserService(repo, &MockProducer{}, zaptest.NewLogger(t))

		user, err := service.FindByEmail(context.Background(), "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("store errors pass through", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		repo := &MockUserRepository{
			findUserByEmail: func(context.Context, string) (*models.User, error) {
				return nil, storeErr
			},
		}
		service := NewUserService(repo, &MockProducer{}, zaptest.NewLogger(t))

		_, err := service.FindByEmail(context.Background(), "ana.horvat@example.com")
		assert.ErrorIs(t, err, storeErr)
	})
}
