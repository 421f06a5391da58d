package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashString returns the lowercase hex SHA-256 digest of s. The result always has 64 characters.
func HashString(s string) string {
	sum := sha256.Sum256([]byte(s))

	return hex.EncodeToString(sum[:])
}
