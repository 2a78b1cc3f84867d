package utils

import (
	"regexp"
	"strings"
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	nonDigits      = regexp.MustCompile(`\D`)
)

// ValidEmail reports whether s looks like an email address. Matches the
// client-side check so server and client agree on what is rejected.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// NormalizePhone strips non-digit characters.
func NormalizePhone(s string) string {
	return nonDigits.ReplaceAllString(s, "")
}

// ValidPhone reports whether s normalizes to a 10-digit domestic number.
func ValidPhone(s string) bool {
	return len(NormalizePhone(s)) == 10
}

// ValidPincode reports whether s is a 6-digit postal code.
func ValidPincode(s string) bool {
	return pincodePattern.MatchString(s)
}

// NormalizeEmail lowercases and trims an email for use as a lookup key.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
