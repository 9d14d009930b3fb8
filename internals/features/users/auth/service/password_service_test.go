package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparePasswordBcrypt(t *testing.T) {
	hashed, err := HashPassword("secret123")
	require.NoError(t, err)
	require.NotEqual(t, "secret123", hashed)

	assert.True(t, ComparePassword(hashed, "secret123"))
	assert.False(t, ComparePassword(hashed, "wrong"))
	assert.False(t, ComparePassword(hashed, ""))
}

// Rows imported from the legacy store hold plain text; those compare by
// equality until rewritten.
func TestComparePasswordLegacyPlainText(t *testing.T) {
	assert.True(t, ComparePassword("plain-pass", "plain-pass"))
	assert.False(t, ComparePassword("plain-pass", "other"))
	assert.False(t, ComparePassword("plain-pass", "$2a$plain-pass"))
}

func TestComparePasswordEmptyStored(t *testing.T) {
	assert.False(t, ComparePassword("", "anything"))
	assert.True(t, ComparePassword("", ""))
}
