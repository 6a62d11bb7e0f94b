package utils

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

var (
	emailRegex     = regexp.MustCompile(`^[a-zA-Z0-9_%+\-]([a-zA-Z0-9._%+\-]*[a-zA-Z0-9_%+\-])?@[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?(\.[a-zA-Z0-9]([a-zA-Z0-9\-]*[a-zA-Z0-9])?)*\.[a-zA-Z]{2,}$`)
	phoneRegex     = regexp.MustCompile(`^\+?[0-9]{10,15}$`)
	phoneSeparator = regexp.MustCompile(`[\s().\-]`)
	controlChars   = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	spaces         = regexp.MustCompile(`\s+`)
)

// GenerateRandomString generates a URL-safe random string of the specified length
func GenerateRandomString(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(bytes)[:length], nil
}

// IsValidEmail checks if a string is a valid email address
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// IsValidPhoneNumber accepts international numbers written with common separators,
// e.g. "+1 (555) 123-4567"
func IsValidPhoneNumber(phone string) bool {
	return phoneRegex.MatchString(phoneSeparator.ReplaceAllString(phone, ""))
}

// Truncate shortens s to maxLength runes, ending with an ellipsis when cut
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return "..."
	}
	return string(runes[:maxLength-3]) + "..."
}

// SanitizeString replaces control characters and collapses whitespace
func SanitizeString(s string) string {
	result := controlChars.ReplaceAllString(s, " ")
	result = spaces.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}
