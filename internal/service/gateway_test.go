package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGatewaySecret(t *testing.T) {
	t.Run("hash verifies against the original secret", func(t *testing.T) {
		hash, err := HashGatewaySecret("hunter2")
		require.NoError(t, err)
		require.NotEqual(t, "hunter2", hash)
		require.NoError(t, VerifyGatewaySecret(hash, "hunter2"))
	})

	t.Run("wrong secret fails", func(t *testing.T) {
		hash, err := HashGatewaySecret("hunter2")
		require.NoError(t, err)
		require.Error(t, VerifyGatewaySecret(hash, "hunter3"))
	})

	t.Run("malformed hash fails", func(t *testing.T) {
		require.Error(t, VerifyGatewaySecret("not-a-bcrypt-hash", "hunter2"))
	})
}
