package consultations

import "regexp"

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9\s\-()]{8,20}$`)
)

// ValidEmail checks the local-part@domain shape with a dot in the
// domain and no embedded whitespace. Deliverability is not checked.
func ValidEmail(s string) bool {
	return emailRe.MatchString(s)
}

// ValidPhone accepts an optional leading + followed by 8-20 characters
// of digits, spaces, hyphens and parentheses.
func ValidPhone(s string) bool {
	return phoneRe.MatchString(s)
}
