package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is the fixed work factor used when hashing passwords.
// Chosen so a single hash takes on the order of tens of milliseconds on
// commodity hardware, which keeps offline brute force expensive without
// making interactive logins sluggish.
const bcryptCost = 12

// HashPassword produces a salted one-way bcrypt digest of the given
// plaintext password.
//
// bcrypt generates a fresh random salt on every call, so hashing the same
// password twice yields different digests. The resulting digest is
// self-describing: it embeds the algorithm version, the cost factor, and the
// salt, so verification needs no external metadata.
//
// Returns an error only on catastrophic internal failure (e.g. the entropy
// source is unavailable). Callers should treat such an error as fatal for
// the current operation, not as a recoverable input problem.
//
// Example usage:
//
//	digest, err := utils.HashPassword("Test123!@#")
func HashPassword(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// CheckPassword reports whether plaintext matches the given bcrypt digest.
//
// The comparison is performed by bcrypt in constant-time fashion. Any
// failure — wrong password, malformed or truncated digest, empty input —
// results in false; no error is surfaced because callers must not be able
// to distinguish the failure modes.
//
// Example usage:
//
//	if !utils.CheckPassword(candidate, user.PasswordHash) {
//	    // reject credentials
//	}
func CheckPassword(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
