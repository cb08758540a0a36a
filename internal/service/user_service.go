// Package service contains application services that coordinate stores and
// platform concerns on behalf of the API layer.
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taskwell/taskwell-api/internal/domain"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// UserRegistrar creates new user accounts.
type UserRegistrar interface {
	// RegisterUser creates a user with the given credentials.
	// Returns store.ErrUsernameExists if the username is already taken.
	RegisterUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserService implements user account operations over the user store.
type UserService struct {
	db        *sql.DB
	userStore store.UserStore
	hasher    auth.PasswordHasher
	logger    *slog.Logger
}

// Ensure UserService implements UserRegistrar.
var _ UserRegistrar = (*UserService)(nil)

// NewUserService creates a new UserService.
func NewUserService(
	db *sql.DB,
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	logger *slog.Logger,
) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		db:        db,
		userStore: userStore,
		hasher:    hasher,
		logger:    logger.With("component", "user_service"),
	}
}

// RegisterUser validates the credentials, hashes the password and creates
// the user inside a transaction. The unique constraint on username is the
// final arbiter of duplicates, so two concurrent registrations of the same
// name cannot both succeed.
func (s *UserService) RegisterUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := domain.NewUser(username, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	hashed, err := s.hasher.Hash(user.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = "" // plaintext is not needed past this point

	err = store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.userStore.WithTx(tx).Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, store.ErrUsernameExists) {
			s.logger.Debug("attempted to register existing username")
			return nil, err
		}
		s.logger.Error("failed to save user", "error", err)
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("user registered", "user_id", user.ID)
	return user, nil
}
