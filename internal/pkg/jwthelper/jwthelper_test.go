package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mealbridge/mealbridge-api/internal/domain"
)

func TestGenerateAndParseToken(t *testing.T) {
	key := []byte("test-signing-key")
	user := domain.User{ID: 7, Email: "donor@example.com", Role: domain.RoleDonor}

	token, err := GenerateToken(key, user, "test-agent")
	require.NoError(t, err)

	claims, err := ParseToken(key, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, domain.RoleDonor, claims.Role)
	assert.Equal(t, "test-agent", claims.UserAgent)
}

func TestParseToken_WrongKey(t *testing.T) {
	user := domain.User{ID: 7, Email: "donor@example.com", Role: domain.RoleDonor}

	token, err := GenerateToken([]byte("key-one"), user, "test-agent")
	require.NoError(t, err)

	_, err = ParseToken([]byte("key-two"), token)
	assert.Error(t, err)
}
