package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_SaltsEachHash(t *testing.T) {
	h1, err := HashPassword("Abc123!@")
	require.NoError(t, err)
	h2, err := HashPassword("Abc123!@")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.True(t, CompareHashAndPassword(h1, "Abc123!@"))
	assert.True(t, CompareHashAndPassword(h2, "Abc123!@"))
}

func TestCompareHashAndPassword_Mismatch(t *testing.T) {
	h, err := HashPassword("Abc123!@")
	require.NoError(t, err)

	assert.False(t, CompareHashAndPassword(h, "abc123!@"))
	assert.False(t, CompareHashAndPassword(h, ""))
}

func TestCompareHashAndPassword_MalformedHash(t *testing.T) {
	assert.False(t, CompareHashAndPassword("not-a-bcrypt-hash", "Abc123!@"))
	assert.False(t, CompareHashAndPassword("", "Abc123!@"))
}
