package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// HashToken stores remember-me tokens the way credentials are stored:
// only the bcrypt hash ever reaches the database. Tokens are longer
// than bcrypt's 72-byte input limit, so the token is reduced to its
// SHA-256 digest first.
func HashToken(token string) (string, error) {
	digest := sha256.Sum256([]byte(token))
	bytes, err := bcrypt.GenerateFromPassword(digest[:], 10)
	return string(bytes), err
}

func CompareToken(hashedToken string, plainToken string) error {
	digest := sha256.Sum256([]byte(plainToken))
	return bcrypt.CompareHashAndPassword([]byte(hashedToken), digest[:])
}

func GenerateSecureToken(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("invalid token length")
	}

	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
