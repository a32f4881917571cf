package security

import (
	"errors"
	"strings"
	"unicode"
)

const (
	// MaxMessageLength defines the maximum allowed length for chat messages
	MaxMessageLength = 500
)

// ValidateMessage validates and normalizes a chat message before it is
// handed to the responder. Returns the trimmed message.
func ValidateMessage(message string) (string, error) {
	message = strings.TrimSpace(message)

	if message == "" {
		return "", errors.New("message must not be empty")
	}

	if len(message) > MaxMessageLength {
		return "", errors.New("message too long")
	}

	for _, char := range message {
		if !isValidMessageChar(char) {
			return "", errors.New("message contains invalid characters")
		}
	}

	return message, nil
}

// isValidMessageChar checks if a character is acceptable in a chat message.
// Control characters other than tab are rejected.
func isValidMessageChar(char rune) bool {
	if char == '\t' {
		return true
	}
	return !unicode.IsControl(char)
}
