package messaging

import (
	"strings"
	"unicode"
)

// NormalizePhone strips whitespace and prepends the country prefix unless
// the number already carries one.
func NormalizePhone(value, countryPrefix string) string {
	value = stripSpaces(value)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "+") {
		return value
	}
	return countryPrefix + value
}

func stripSpaces(value string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, value)
}

// redact keeps only the last four digits for logs.
func redact(phone string) string {
	if len(phone) <= 4 {
		return "***"
	}
	return "***" + phone[len(phone)-4:]
}
