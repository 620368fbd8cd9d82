package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager("test-secret", "JobPortalAPI", 168*time.Hour)
}

func TestGenerateAndParse(t *testing.T) {
	m := newTestManager()

	tok, err := m.Generate(42, "jane@example.com", "Jane", "Doe")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, "Jane", claims.FirstName)
	assert.Equal(t, "Doe", claims.LastName)
	assert.Equal(t, "JobPortalAPI", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	m := newTestManager()
	tok, err := m.Generate(1, "a@b.c", "A", "B")
	require.NoError(t, err)

	other := NewJWTManager("other-secret", "JobPortalAPI", time.Hour)
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParse_WrongIssuer(t *testing.T) {
	other := NewJWTManager("test-secret", "SomeoneElse", time.Hour)
	tok, err := other.Generate(1, "a@b.c", "A", "B")
	require.NoError(t, err)

	m := newTestManager()
	_, err = m.Parse(tok)
	assert.Error(t, err)
}

func TestParse_Expired(t *testing.T) {
	m := NewJWTManager("test-secret", "JobPortalAPI", -time.Minute)
	tok, err := m.Generate(1, "a@b.c", "A", "B")
	require.NoError(t, err)

	// Expiry is enforced with zero leeway.
	_, err = m.Parse(tok)
	assert.Error(t, err)
	assert.False(t, m.Validate(tok))
}

func TestValidate(t *testing.T) {
	m := newTestManager()
	tok, err := m.Generate(7, "x@y.z", "X", "Y")
	require.NoError(t, err)

	assert.True(t, m.Validate(tok))
	assert.False(t, m.Validate(tok+"a"))
	assert.False(t, m.Validate(""))
	assert.False(t, m.Validate("not.a.token"))
}

func TestExtractUserID(t *testing.T) {
	m := newTestManager()
	tok, err := m.Generate(1337, "x@y.z", "X", "Y")
	require.NoError(t, err)

	id, ok := m.ExtractUserID(tok)
	assert.True(t, ok)
	assert.Equal(t, 1337, id)

	_, ok = m.ExtractUserID("garbage")
	assert.False(t, ok)

	wrong := NewJWTManager("other-secret", "JobPortalAPI", time.Hour)
	_, ok = wrong.ExtractUserID(tok)
	assert.False(t, ok)
}
