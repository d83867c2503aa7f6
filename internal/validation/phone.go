package validation

import "regexp"

// Egyptian mobile format: exactly 11 digits with a leading "01".
var phonePattern = regexp.MustCompile(`^01[0-9]{9}$`)

// IsValidPhone reports whether text is a canonical local mobile number.
// No normalization is applied; spaces, dashes or a country prefix fail.
func IsValidPhone(text string) bool {
	return phonePattern.MatchString(text)
}
