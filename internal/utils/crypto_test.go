package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOwnerToken(t *testing.T) {
	token := GenerateOwnerToken()

	assert.Len(t, token, 64)
	_, err := hex.DecodeString(token)
	require.NoError(t, err, "token must be valid hex")

	// collisions across a handful of draws would mean broken entropy
	seen := map[string]struct{}{token: {}}
	for i := 0; i < 100; i++ {
		next := GenerateOwnerToken()
		_, dup := seen[next]
		require.False(t, dup, "generated a duplicate token")
		seen[next] = struct{}{}
	}
}
