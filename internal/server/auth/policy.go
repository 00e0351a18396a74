package auth

import (
	"strings"
	"unicode"
)

// ValidationResult is the outcome of a password strength check. Message is
// always set, for failures and for the passing case alike.
type ValidationResult struct {
	Valid   bool
	Message string
}

// passwordSymbols is the punctuation set accepted by the composition rule.
const passwordSymbols = `!@#$%^&*()_+-=[]{};':"\|,.<>/?~` + "`"

// ValidatePassword applies the strength rules in order, stopping at the
// first failure: non-empty, at least 8 characters, and at least one digit
// or symbol.
func ValidatePassword(password string) ValidationResult {
	if password == "" {
		return ValidationResult{Message: "Password cannot be empty"}
	}
	if len(password) < 8 {
		return ValidationResult{Message: "Password must be at least 8 characters long"}
	}
	hasDigitOrSymbol := strings.ContainsFunc(password, func(r rune) bool {
		return unicode.IsDigit(r) || strings.ContainsRune(passwordSymbols, r)
	})
	if !hasDigitOrSymbol {
		return ValidationResult{Message: "Password must contain at least one number or special character"}
	}
	return ValidationResult{Valid: true, Message: "Password meets strength requirements"}
}
