package service

import (
	"context"
	"testing"
	"time"

	"github.com/spendtrack/spendtrack-api/internal/domain"
	"github.com/spendtrack/spendtrack-api/internal/service/auth"
	"github.com/spendtrack/spendtrack-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUserService(userStore store.UserStore) *UserServiceImpl {
	hasher := auth.NewBcryptHasher()
	tokenService := auth.NewTestTokenService(
		"test-secret-that-is-long-enough-for-testing",
		time.Hour,
		nil,
	)
	return NewUserService(userStore, hasher, hasher, tokenService, nil)
}

func TestUserServiceRegister(t *testing.T) {
	t.Parallel()

	t.Run("returns a verifiable token", func(t *testing.T) {
		t.Parallel()
		userStore := newFakeUserStore()
		svc := newTestUserService(userStore)

		token, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret-password")
		require.NoError(t, err)
		require.NotEmpty(t, token)

		// The stored user carries the hash, never the plaintext.
		user, err := userStore.GetByEmail(context.Background(), "ada@example.com")
		require.NoError(t, err)
		assert.Empty(t, user.Password)
		assert.NotEmpty(t, user.HashedPassword)
		assert.NotEqual(t, "secret-password", user.HashedPassword)
	})

	t.Run("duplicate email rejected regardless of other fields", func(t *testing.T) {
		t.Parallel()
		userStore := newFakeUserStore()
		svc := newTestUserService(userStore)

		_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret-password")
		require.NoError(t, err)

		_, err = svc.Register(context.Background(), "Someone Else", "ada@example.com", "different-password")
		assert.ErrorIs(t, err, store.ErrEmailExists)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		t.Parallel()
		svc := newTestUserService(newFakeUserStore())
		_, err := svc.Register(context.Background(), "", "ada@example.com", "secret-password")
		assert.ErrorIs(t, err, domain.ErrEmptyName)
	})

	t.Run("missing email rejected", func(t *testing.T) {
		t.Parallel()
		svc := newTestUserService(newFakeUserStore())
		_, err := svc.Register(context.Background(), "Ada", "", "secret-password")
		assert.ErrorIs(t, err, domain.ErrEmptyEmail)
	})
}

func TestUserServiceLogin(t *testing.T) {
	t.Parallel()

	setup := func(t *testing.T) (*UserServiceImpl, *fakeUserStore) {
		t.Helper()
		userStore := newFakeUserStore()
		svc := newTestUserService(userStore)
		_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret-password")
		require.NoError(t, err)
		return svc, userStore
	}

	t.Run("succeeds with matching credentials", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)
		token, err := svc.Login(context.Background(), "ada@example.com", "secret-password")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("unknown email", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)
		_, err := svc.Login(context.Background(), "nobody@example.com", "secret-password")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)
		_, err := svc.Login(context.Background(), "ada@example.com", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidPassword)
	})

	t.Run("email lookup is exact match", func(t *testing.T) {
		t.Parallel()
		svc, _ := setup(t)
		_, err := svc.Login(context.Background(), "ADA@example.com", "secret-password")
		assert.ErrorIs(t, err, ErrUnknownEmail)
	})
}

func TestUserServiceDeleteByEmail(t *testing.T) {
	t.Parallel()

	userStore := newFakeUserStore()
	svc := newTestUserService(userStore)
	_, err := svc.Register(context.Background(), "Ada", "ada@example.com", "secret-password")
	require.NoError(t, err)

	deleted, err := svc.DeleteByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.True(t, deleted)

	// Second delete is an idempotent no-op, not an error.
	deleted, err = svc.DeleteByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = svc.FindByEmail(context.Background(), "ada@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
