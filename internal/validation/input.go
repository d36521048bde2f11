package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Validation limits.
const (
	MinUsernameLength = 3
	MaxUsernameLength = 30
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// ValidateLength checks the rune-count of a string field.
func ValidateLength(fieldName, value string, min, max int) error {
	length := utf8.RuneCountInString(value)
	if min > 0 && length < min {
		return fmt.Errorf("%s must be at least %d characters", fieldName, min)
	}
	if max > 0 && length > max {
		return fmt.Errorf("%s must be at most %d characters", fieldName, max)
	}
	return nil
}

// ValidateEmail checks a basic email shape: one @, sane part lengths, a dot
// in the domain.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	parts := strings.Split(email, "@")
	if len(parts) != 2 {
		return fmt.Errorf("invalid email format")
	}

	localPart, domainPart := parts[0], parts[1]
	if len(localPart) == 0 || len(localPart) > 64 {
		return fmt.Errorf("email local part must be between 1 and 64 characters")
	}
	if len(domainPart) == 0 || len(domainPart) > 255 || !strings.Contains(domainPart, ".") {
		return fmt.Errorf("invalid email domain")
	}

	return nil
}

// ValidatePassword enforces the password policy: length plus at least one
// letter and one digit. bcrypt truncates past 72 bytes, hence the cap.
func ValidatePassword(password string) error {
	if err := ValidateLength("password", password, MinPasswordLength, MaxPasswordLength); err != nil {
		return err
	}

	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasLetter || !hasDigit {
		return fmt.Errorf("password must contain at least one letter and one digit")
	}
	return nil
}

// ValidateUsername checks username length and the allowed character set.
func ValidateUsername(username string) error {
	if err := ValidateLength("username", username, MinUsernameLength, MaxUsernameLength); err != nil {
		return err
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return fmt.Errorf("username may only contain letters, digits, '_', '-' and '.'")
		}
	}
	return nil
}
