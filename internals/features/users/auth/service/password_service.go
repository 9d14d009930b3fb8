package service

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a password for storage. Every admin password written
// by this system is hashed; plain rows only come from the legacy import.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// ComparePassword checks a candidate against a stored credential that may be
// either a bcrypt hash or a legacy plain-text value. The format is detected
// by the bcrypt prefix; migration to hashed happens on write, not on read.
func ComparePassword(stored, candidate string) bool {
	if strings.HasPrefix(stored, "$2a$") || strings.HasPrefix(stored, "$2b$") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
	}
	return stored == candidate
}
