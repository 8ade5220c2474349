//go:build unit

package user_test

import (
	"testing"

	"hotelhub/internal/domain/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmail(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		e, err := user.NewEmail("  Awa@Example.COM ")
		require.NoError(t, err)
		assert.Equal(t, "awa@example.com", e.String())
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		for _, raw := range []string{"", "not-an-email", "missing@", "@missing.com"} {
			_, err := user.NewEmail(raw)
			assert.ErrorIs(t, err, user.ErrInvalidEmail, raw)
		}
	})
}

func TestNewUser(t *testing.T) {
	email, err := user.NewEmail("awa@example.com")
	require.NoError(t, err)

	t.Run("valid input", func(t *testing.T) {
		u, err := user.NewUser(" Awa Diallo ", email, "+33600000001", "hashed", user.RoleClient)
		require.NoError(t, err)

		assert.Equal(t, "Awa Diallo", u.Name())
		assert.Equal(t, user.RoleClient, u.Role())
		assert.True(t, u.IsActive())
		assert.Equal(t, 0, u.LoyaltyPoints())
	})

	t.Run("rejects blank names", func(t *testing.T) {
		_, err := user.NewUser("   ", email, "", "hashed", user.RoleClient)
		assert.ErrorIs(t, err, user.ErrEmptyName)
	})

	t.Run("rejects unknown roles", func(t *testing.T) {
		_, err := user.NewUser("Awa", email, "", "hashed", user.Role("SUPERUSER"))
		assert.ErrorIs(t, err, user.ErrInvalidRole)
	})
}

func TestNewRole(t *testing.T) {
	for _, valid := range []string{"CLIENT", "MANAGER", "ADMIN"} {
		r, err := user.NewRole(valid)
		require.NoError(t, err)
		assert.Equal(t, valid, r.String())
	}

	_, err := user.NewRole("client")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}
