package auth

import (
	"testing"
	"time"

	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_IssueAndParse(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	user := &domain.User{
		ID:    "user-1",
		Email: "admin@southpark.com",
		Role:  domain.RoleAdmin,
	}

	token, err := tm.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@southpark.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenManager_Parse_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", time.Hour)
	verifier := NewTokenManager("secret-b", time.Hour)

	token, err := issuer.Issue(&domain.User{ID: "user-1", Role: domain.RoleEmpleado})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestTokenManager_Parse_Expired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, err := tm.Issue(&domain.User{ID: "user-1", Role: domain.RoleEmpleado})
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.Error(t, err)
}
