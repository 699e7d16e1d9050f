package middleware

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Input validation and sanitization utilities

// MaxMessageLength bounds a chat message in runes.
const MaxMessageLength = 4000

var sessionIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.:-]{1,128}$`)

// SanitizeString removes dangerous characters from strings
func SanitizeString(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Remove control characters
	var result strings.Builder
	for _, r := range input {
		if r >= 32 || r == '\t' || r == '\n' {
			result.WriteRune(r)
		}
	}

	return strings.TrimSpace(result.String())
}

// ValidateMessage sanitises a chat message and rejects oversized input.
// Emptiness is checked by the chat service.
func ValidateMessage(msg string) (string, error) {
	msg = SanitizeString(msg)
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return "", fmt.Errorf("message exceeds %d characters", MaxMessageLength)
	}
	return msg, nil
}

// ValidateSessionID validates a client-supplied session id.
func ValidateSessionID(id string) error {
	if !sessionIDPattern.MatchString(id) {
		return fmt.Errorf("invalid session ID format (alphanumeric, dash, underscore, dot, colon only, max 128 chars)")
	}
	return nil
}
