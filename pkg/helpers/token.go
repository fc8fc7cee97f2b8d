package helpers

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
)

// GenRecoveryToken returns 32 random bytes hex-encoded (64 characters).
func GenRecoveryToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenURLToken returns n random bytes encoded for use in links.
func GenURLToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
