package auth

import (
	"errors"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

const passwordSymbols = "!@#$%^&*()_+-=[]{};':\"\\|,.<>/?"

// truncatePassword trims a password to bcrypt's 72-byte limit without
// splitting a multi-byte UTF-8 sequence: trailing continuation bytes
// (10xxxxxx) left dangling by the cut are dropped.
func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) <= 72 {
		return b
	}
	b = b[:72]
	for len(b) > 0 && b[len(b)-1]&0xC0 == 0x80 {
		b = b[:len(b)-1]
	}
	return b
}

// HashPassword hashes a password with bcrypt and a per-call random salt.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword reports whether password matches the stored bcrypt hash.
// A malformed stored hash counts as a mismatch, never an error.
func CheckPassword(password, hashed string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), truncatePassword(password)) == nil
}

// ValidatePassword enforces the registration password policy: 8-128
// characters with at least one uppercase letter, one lowercase letter, one
// digit and one special character.
func ValidatePassword(password string) error {
	runes := []rune(password)
	if len(runes) < 8 {
		return errors.New("Password must be at least 8 characters long")
	}
	if len(runes) > 128 {
		return errors.New("Password must be no more than 128 characters long")
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}
	if !hasUpper {
		return errors.New("Password must contain at least one uppercase letter")
	}
	if !hasLower {
		return errors.New("Password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return errors.New("Password must contain at least one digit")
	}
	if !hasSymbol {
		return errors.New("Password must contain at least one special character (" + passwordSymbols + ")")
	}
	return nil
}
