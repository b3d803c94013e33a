package validation

import (
	"errors"
	"strings"
)

// ValidateUsername validates a login handle
func ValidateUsername(username string) error {
	trimmed := strings.TrimSpace(username)

	if trimmed == "" {
		return errors.New("username is required")
	}

	if len(trimmed) > 50 {
		return errors.New("username is too long (max 50 characters)")
	}

	if strings.ContainsAny(trimmed, " \t\n") {
		return errors.New("username must not contain whitespace")
	}

	return nil
}
