package webutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// GenerateHash creates a SHA-256 hash of the input string and returns it
// as a hexadecimal string.
func GenerateHash(data string) (string, error) {
	hasher := sha256.New()
	_, err := hasher.Write([]byte(data))
	if err != nil {
		return "", fmt.Errorf("failed to write data to hasher: %w", err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// StrongETag returns a quoted entity tag for body, derived from its SHA-256.
func StrongETag(body []byte) (string, error) {
	hash, err := GenerateHash(string(body))
	if err != nil {
		return "", err
	}
	return `"` + hash + `"`, nil
}
