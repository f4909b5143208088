package auth

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	t.Run("should produce salt and digest separated by a colon", func(t *testing.T) {
		hash, err := HashPassword("secret")

		require.NoError(t, err)
		parts := strings.SplitN(hash, ":", 2)
		require.Len(t, parts, 2)
		assert.Len(t, parts[0], 32)
		assert.Len(t, parts[1], 64)
	})

	t.Run("should salt each hash differently", func(t *testing.T) {
		first, err := HashPassword("secret")
		require.NoError(t, err)
		second, err := HashPassword("secret")
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}

func TestCheckPassword(t *testing.T) {
	t.Run("should accept the original password", func(t *testing.T) {
		hash, err := HashPassword("secret")
		require.NoError(t, err)

		assert.True(t, CheckPassword(hash, "secret"))
	})

	t.Run("should reject a wrong password", func(t *testing.T) {
		hash, err := HashPassword("secret")
		require.NoError(t, err)

		assert.False(t, CheckPassword(hash, "other"))
	})

	t.Run("should reject malformed stored values", func(t *testing.T) {
		assert.False(t, CheckPassword("no-colon-here", "secret"))
		assert.False(t, CheckPassword("", "secret"))
	})
}
