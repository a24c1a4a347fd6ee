package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateResetToken produces an opaque single-use token for the password
// recovery flow: 32 random bytes, hex-encoded.
func GenerateResetToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
