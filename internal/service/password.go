package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword produces the digest stored for new and changed passwords.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// verifyPassword checks a candidate password against a stored digest.
// Database files written by earlier releases hold unsalted SHA-256 hex
// digests; those still verify, and legacy=true tells the caller to rewrite
// the row with a bcrypt digest.
func verifyPassword(stored, password string) (ok bool, legacy bool) {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil, false
	}
	sum := sha256.Sum256([]byte(password))
	candidate := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1, true
}

// DeriveUsername builds the canonical firstname.lastname login name.
func DeriveUsername(firstName, lastName string) (string, error) {
	first := strings.ToLower(strings.TrimSpace(firstName))
	last := strings.ToLower(strings.TrimSpace(lastName))
	if first == "" || last == "" {
		return "", fmt.Errorf("first and last name are required")
	}
	return first + "." + last, nil
}
