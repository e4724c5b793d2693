package normalization

import (
	"strings"
)

// ParseInputString lowercases and trims free-form identity input (emails,
// selector strings). Never use it for passwords.
func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// ParseName trims display names without changing their case.
func ParseName(input string) string {
	return strings.TrimSpace(input)
}
