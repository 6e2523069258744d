package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	token, exp, err := m.Generate(42, "alice", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)

	uid, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, int64(42), uid)
}

func TestTokensAreUniquePerIssue(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	// Same user, same second: the jti keeps the tokens apart.
	a, _, err := m.Generate(1, "u", "u@example.com")
	require.NoError(t, err)
	b, _, err := m.Generate(1, "u", "u@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, _, err := m.Generate(1, "u", "u@example.com")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	m := NewJWTManager("secret", -time.Minute)

	token, _, err := m.Generate(1, "u", "u@example.com")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	_, err := m.Parse("not.a.token")
	assert.Error(t, err)
}
