package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const ownerTokenBytes = 32

// GenerateOwnerToken returns a cryptographically unpredictable hex token.
// 32 bytes of entropy encode to 64 characters, the upper bound accepted
// for caller-supplied tokens.
func GenerateOwnerToken() string {
	b := make([]byte, ownerTokenBytes)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("failed to generate owner token: %v", err))
	}
	return hex.EncodeToString(b)
}
