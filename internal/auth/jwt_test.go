package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestValidateAccessToken(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		token, err := IssueAccessToken("user-123", testSecret, time.Hour)
		require.NoError(t, err)

		userID, err := ValidateAccessToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "user-123", userID)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := IssueAccessToken("user-123", testSecret, time.Hour)
		require.NoError(t, err)

		_, err = ValidateAccessToken(token, "another-secret-entirely-32-chars!")
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := IssueAccessToken("user-123", testSecret, -2*time.Minute)
		require.NoError(t, err)

		_, err = ValidateAccessToken(token, testSecret)
		assert.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ValidateAccessToken("not.a.jwt", testSecret)
		assert.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := IssueAccessToken("", testSecret, time.Hour)
		require.NoError(t, err)

		_, err = ValidateAccessToken(token, testSecret)
		assert.Error(t, err)
	})
}
