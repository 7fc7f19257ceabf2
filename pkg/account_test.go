package pkg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAccount(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		require.NoError(t, ValidateAccount("alice"))
		require.NoError(t, ValidateAccount("acct-0001"))
	})

	t.Run("empty", func(t *testing.T) {
		err := ValidateAccount("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "required")
	})

	t.Run("too long", func(t *testing.T) {
		err := ValidateAccount(strings.Repeat("a", 129))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds")

		require.NoError(t, ValidateAccount(strings.Repeat("a", 128)))
	})

	t.Run("surrounding whitespace", func(t *testing.T) {
		require.Error(t, ValidateAccount(" alice"))
		require.Error(t, ValidateAccount("alice "))
		require.Error(t, ValidateAccount("\talice\n"))
	})
}
