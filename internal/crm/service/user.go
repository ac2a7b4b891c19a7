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

// UserRepository defines the storage interface for User records.
type UserRepository interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	SaveUser(ctx context.Context, user *models.User) (*models.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
}

// UserService manages the organization's own members. Emails are unique and
// double as the login identity.
type UserService struct {
	repo     UserRepository
	producer EventProducer
	logger   *zap.Logger
	mu       sync.Mutex
}

func NewUserService(repo UserRepository, producer EventProducer, logger *zap.Logger) *UserService {
	return &UserService{
		repo:     repo,
		producer: producer,
		logger:   logger.Named("user_service"),
	}
}

func (s *UserService) Create(ctx context.Context, candidate *models.UserCandidate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.repo.UserExistsByEmail(ctx, candidate.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, e.Duplicate("email", candidate.Email)
	}
	if err := validation.User(candidate); err != nil {
		return nil, err
	}

	created, err := s.repo.SaveUser(ctx, &models.User{
		Name:          candidate.Name,
		Surname:       candidate.Surname,
		Nickname:      candidate.Nickname,
		Email:         candidate.Email,
		Authorization: candidate.Authorization,
		Description:   candidate.Description,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	go func() {
		s.producer.Produce("user", events.ActionCreated, created.ID, created)
	}()
	return created, nil
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, candidate *models.UserCandidate) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Keeping the same email is not a collision with itself.
	if candidate.Email != existing.Email {
		exists, err := s.repo.UserExistsByEmail(ctx, candidate.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check email existence: %w", err)
		}
		if exists {
			return nil, e.Duplicate("email", candidate.Email)
		}
	}
	if err := validation.User(candidate); err != nil {
		return nil, err
	}

	existing.Name = candidate.Name
	existing.Surname = candidate.Surname
	existing.Nickname = candidate.Nickname
	existing.Email = candidate.Email
	existing.Authorization = candidate.Authorization
	existing.Description = candidate.Description

	updated, err := s.repo.SaveUser(ctx, existing)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	go func() {
		s.producer.Produce("user", events.ActionUpdated, updated.ID, updated)
	}()
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to get user for deletion: %w", err)
	}
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	go func() {
		s.producer.Produce("user", events.ActionDeleted, user.ID, user)
	}()
	return nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// FindByEmail serves the login flow: the inbound adapter extracts an email
// from a verified identity token and asks for the matching user. A nil user
// with a nil error means no user carries the email.
func (s *UserService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.repo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repo.ListUsers(ctx)
}
