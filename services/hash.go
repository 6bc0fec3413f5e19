package services

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters, shared by account passwords and note lock
// secrets.
const (
	memory      = 64 * 1024
	iterations  = 3
	parallelism = 2
	keyLength   = 32
)

// HashSecret derives an argon2id hash of the secret with a fresh salt,
// encoded as "salt$hash". Lock secrets are never stored in clear.
func HashSecret(secret string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.New("failed to generate salt")
	}

	hash := argon2.IDKey([]byte(secret), salt, iterations, memory, parallelism, keyLength)

	encodedSalt := base64.RawStdEncoding.EncodeToString(salt)
	encodedHash := base64.RawStdEncoding.EncodeToString(hash)

	return encodedSalt + "$" + encodedHash, nil
}

// VerifySecret re-derives the hash with the stored salt and compares in
// constant time.
func VerifySecret(stored, provided string) (bool, error) {
	parts := strings.Split(stored, "$")
	if len(parts) != 2 {
		return false, errors.New("invalid stored secret format")
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return false, err
	}
	storedHash, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return false, err
	}

	computedHash := argon2.IDKey([]byte(provided), salt, iterations, memory, parallelism, keyLength)

	return subtle.ConstantTimeCompare(computedHash, storedHash) == 1, nil
}

// CompareSecrets is VerifySecret with errors folded into a mismatch.
func CompareSecrets(stored, provided string) bool {
	match, err := VerifySecret(stored, provided)
	if err != nil {
		return false
	}
	return match
}
