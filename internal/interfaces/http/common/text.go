package common

import (
	"strings"
	"unicode/utf8"
)

// TruncateRunes trims whitespace and cuts value down to max runes, so
// adversarial input cannot blow up the email size.
func TruncateRunes(value string, max int) string {
	value = strings.TrimSpace(value)
	if max <= 0 || utf8.RuneCountInString(value) <= max {
		return value
	}
	runes := []rune(value)
	return string(runes[:max])
}
