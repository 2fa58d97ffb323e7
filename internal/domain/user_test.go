package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Parallel()

	t.Run("valid user", func(t *testing.T) {
		t.Parallel()
		user, err := NewUser("Ada", "ada@example.com", "correct-horse-battery")
		require.NoError(t, err)

		assert.Equal(t, "Ada", user.Name)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "correct-horse-battery", user.Password)
		assert.Empty(t, user.HashedPassword)
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("", "ada@example.com", "secret")
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("empty email rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("Ada", "", "secret")
		assert.ErrorIs(t, err, ErrEmptyEmail)
	})

	t.Run("empty password rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewUser("Ada", "ada@example.com", "")
		assert.ErrorIs(t, err, ErrEmptyPassword)
	})
}

func TestUserValidateEmailFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		valid bool
	}{
		{"ada@example.com", true},
		{"a@b.co", true},
		{"no-at-sign.com", false},
		{"@example.com", false},
		{"ada@", false},
		{"ada@example", false},
		{"ada@.com", false},
		{"ada@example.", false},
	}

	for _, tc := range tests {
		t.Run(tc.email, func(t *testing.T) {
			t.Parallel()
			u := &User{Name: "Ada", Email: tc.email, HashedPassword: "hash"}
			err := u.Validate()
			if tc.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidEmail)
			}
		})
	}
}

func TestUserValidateLoadedFromStore(t *testing.T) {
	t.Parallel()

	// Users loaded from the database carry only the hash.
	u := &User{Name: "Ada", Email: "ada@example.com", HashedPassword: "$2a$10$abc"}
	assert.NoError(t, u.Validate())
}

func TestUserValidationErrorsMatchValidationFamily(t *testing.T) {
	t.Parallel()

	// Every user sentinel matches ErrValidation, so a single errors.Is
	// check classifies them all as client errors.
	for _, err := range []error{ErrEmptyName, ErrEmptyEmail, ErrEmptyPassword, ErrEmptyHashedPassword, ErrInvalidEmail} {
		assert.ErrorIs(t, err, ErrValidation, "%v", err)
	}
}
