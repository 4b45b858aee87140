package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("correct-horse")
	require.NoError(t, err)
	assert.NotEqual(t, "correct-horse", hash)

	assert.True(t, CheckPasswordHash("correct-horse", hash))
	assert.False(t, CheckPasswordHash("wrong-horse", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(42, RoleAdmin, "admin@grafica.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "admin@grafica.com", claims.Email)
}

func TestParseJWT_Invalid(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("Garbage token", func(t *testing.T) {
		_, err := ParseJWT("not.a.token")
		assert.Error(t, err)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := GenerateJWT(1, RoleEmployee, "e@grafica.com")
		require.NoError(t, err)

		t.Setenv("JWT_SECRET", "different-secret")
		_, err = ParseJWT(token)
		assert.Error(t, err)
	})
}

func TestGenerateJWT_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(1, RoleAdmin, "a@grafica.com")
	assert.Error(t, err)
}
