// Package employeecode formats employee codes of the form
// PP II YYYY NNNN: two prefix characters, first and last initials,
// join year and a per-stem serial.
package employeecode

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const DefaultPrefix = "DF"

// Stem returns the code without its serial, e.g. "OIJODO2022".
func Stem(companyPrefix, firstName, lastName string, joinYear int) string {
	prefix := strings.ToUpper(strings.TrimSpace(companyPrefix))
	if prefix == "" {
		prefix = DefaultPrefix
	}
	if utf8.RuneCountInString(prefix) > 2 {
		prefix = string([]rune(prefix)[:2])
	}
	return fmt.Sprintf("%s%c%c%04d", prefix, initial(firstName), initial(lastName), joinYear)
}

// Format appends the 1-based serial to stem.
func Format(stem string, serial int) string {
	return fmt.Sprintf("%s%04d", stem, serial)
}

// Next returns the code that follows existing codes sharing stem.
func Next(stem string, existing int) string {
	return Format(stem, existing+1)
}

// SplitName splits a full name into first and last. A single word is used for both.
func SplitName(full string) (first, last string) {
	parts := strings.Fields(full)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], parts[0]
	default:
		return parts[0], parts[len(parts)-1]
	}
}

func initial(name string) rune {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(name))
	if r == utf8.RuneError {
		return 'X'
	}
	return unicode.ToUpper(r)
}
