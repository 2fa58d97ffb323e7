package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spendtrack/spendtrack-api/internal/domain"
	"github.com/spendtrack/spendtrack-api/internal/service/auth"
	"github.com/spendtrack/spendtrack-api/internal/store"
)

// UserService provides account registration, login, and lookup operations.
// It composes the credential service, the token service, and the user store.
type UserService interface {
	// Register creates a new account and returns a freshly issued token.
	// Returns domain validation errors for missing name/email and
	// store.ErrEmailExists if the email is already registered.
	Register(ctx context.Context, name, email, password string) (string, error)

	// Login verifies credentials and returns a freshly issued token.
	// Returns ErrUnknownEmail if no account matches and ErrInvalidPassword
	// if hash verification fails.
	Login(ctx context.Context, email, password string) (string, error)

	// FindByEmail retrieves a user by exact email match.
	// Returns store.ErrUserNotFound if no account matches.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// DeleteByEmail removes an account and its expenses. Returns true if an
	// account existed and was removed, false for a no-op.
	DeleteByEmail(ctx context.Context, email string) (bool, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	userStore    store.UserStore
	hasher       auth.PasswordHasher
	verifier     auth.PasswordVerifier
	tokenService auth.TokenService
	logger       *slog.Logger
}

// Ensure UserServiceImpl implements UserService interface
var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	tokenService auth.TokenService,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore:    userStore,
		hasher:       hasher,
		verifier:     verifier,
		tokenService: tokenService,
		logger:       logger.With("component", "user_service"),
	}
}

// Register creates the account and returns a token for the new identity.
func (s *UserServiceImpl) Register(ctx context.Context, name, email, password string) (string, error) {
	user, err := domain.NewUser(name, email, password)
	if err != nil {
		s.logger.Debug("rejected registration with invalid data",
			"error", err,
			"email", email)
		return "", err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("failed to hash password",
			"error", err,
			"email", email)
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	user.HashedPassword = hashed
	user.Password = "" // Plaintext never reaches the store.

	if err := s.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			s.logger.Debug("attempted to register existing email",
				"email", email)
		} else {
			s.logger.Error("failed to save user",
				"error", err,
				"email", email)
		}
		return "", err
	}

	token, err := s.tokenService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to generate token after registration",
			"error", err,
			"user_id", user.ID)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user registered successfully",
		"user_id", user.ID,
		"email", user.Email)
	return token, nil
}

// Login verifies the credentials and returns a token on success.
func (s *UserServiceImpl) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			s.logger.Debug("login attempt for unknown email", "email", email)
			return "", ErrUnknownEmail
		}
		s.logger.Error("failed to look up user for login",
			"error", err,
			"email", email)
		return "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := s.verifier.Compare(user.HashedPassword, password); err != nil {
		s.logger.Debug("login attempt with wrong password",
			"user_id", user.ID)
		return "", ErrInvalidPassword
	}

	token, err := s.tokenService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		s.logger.Error("failed to generate token after login",
			"error", err,
			"user_id", user.ID)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("user logged in successfully", "user_id", user.ID)
	return token, nil
}

// FindByEmail retrieves a user by exact email match.
func (s *UserServiceImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userStore.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			s.logger.Error("failed to retrieve user by email",
				"error", err,
				"email", email)
		}
		return nil, err
	}
	return user, nil
}

// DeleteByEmail removes the account; owned expenses cascade at the store.
func (s *UserServiceImpl) DeleteByEmail(ctx context.Context, email string) (bool, error) {
	deleted, err := s.userStore.DeleteByEmail(ctx, email)
	if err != nil {
		s.logger.Error("failed to delete user",
			"error", err,
			"email", email)
		return false, err
	}

	if deleted {
		s.logger.Info("user deleted", "email", email)
	}
	return deleted, nil
}
