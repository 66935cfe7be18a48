package pkg

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// SecretHashCost is the bcrypt cost of stored secret hashes.
const SecretHashCost = 14

var ErrEmptySecret = errors.New("secret is empty")

// HashSecret returns the bcrypt hash of secret, as kept in config and env vars.
func HashSecret(secret string) (string, error) {
	if secret == "" {
		return "", ErrEmptySecret
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), SecretHashCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckSecretHash reports whether secret matches hash. An empty secret never matches.
func CheckSecretHash(secret, hash string) bool {
	if secret == "" || hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
