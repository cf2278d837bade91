// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ValidatePassword checks if a password meets security requirements
func ValidatePassword(password string) error {
	// Check minimum length
	if len(password) < 12 {
		return fmt.Errorf("password must be at least 12 characters long")
	}

	// Check maximum length (prevent unreasonable inputs)
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	// Check for uppercase letter
	hasUpper := false
	for _, r := range password {
		if unicode.IsUpper(r) {
			hasUpper = true
			break
		}
	}
	if !hasUpper {
		return fmt.Errorf("password must contain at least one uppercase letter")
	}

	// Check for lowercase letter
	hasLower := false
	for _, r := range password {
		if unicode.IsLower(r) {
			hasLower = true
			break
		}
	}
	if !hasLower {
		return fmt.Errorf("password must contain at least one lowercase letter")
	}

	// Check for digit
	hasDigit := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasDigit {
		return fmt.Errorf("password must contain at least one digit")
	}

	// Check for special character
	hasSpecial := regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>\/?]`).MatchString(password)
	if !hasSpecial {
		return fmt.Errorf("password must contain at least one special character (!@#$%%^&*)")
	}

	return nil
}

// ValidateName checks if a display name meets requirements
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return fmt.Errorf("name must be at least 2 characters long")
	}

	if len(trimmed) > 60 {
		return fmt.Errorf("name must not exceed 60 characters")
	}

	for _, r := range trimmed {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != ' ' && r != '\'' && r != '-' && r != '.' {
			return fmt.Errorf("name contains invalid characters")
		}
	}

	return nil
}

// ValidateEmail checks basic email format
func ValidateEmail(email string) error {
	// Simple email validation - regex approach
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return fmt.Errorf("invalid email format")
	}

	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}

	return nil
}
