package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCompare(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, CompareHashAndPassword(hash, "s3cret"))
	assert.False(t, CompareHashAndPassword(hash, "wrong"))
	assert.False(t, CompareHashAndPassword("", "s3cret"))
}
