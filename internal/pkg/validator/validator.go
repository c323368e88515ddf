package validator

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Phone number validation: optional leading +, then 7-15 digits.
// Spaces and dashes are ignored, up to 32 characters in total.
func IsValidPhoneNumber(phone string) bool {
	if len(phone) > 32 {
		return false
	}
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.TrimPrefix(phone, "+")

	if len(phone) < 7 || len(phone) > 15 {
		return false
	}
	return IsNumeric(phone)
}

var companyPrefixRegex = regexp.MustCompile(`^[A-Za-z0-9]{2,5}$`)

// IsValidCompanyPrefix accepts 2-5 alphanumeric characters.
func IsValidCompanyPrefix(prefix string) bool {
	return companyPrefixRegex.MatchString(prefix)
}

// MinLength counts runes, not bytes.
func MinLength(s string, n int) bool {
	return utf8.RuneCountInString(s) >= n
}

// MaxLength counts runes, not bytes.
func MaxLength(s string, n int) bool {
	return utf8.RuneCountInString(s) <= n
}

// FitsNumeric reports whether d can be stored in a NUMERIC(precision, scale)
// column without rounding or overflow.
func FitsNumeric(d decimal.Decimal, precision, scale int32) bool {
	if !d.Equal(d.Truncate(scale)) {
		return false
	}
	return d.Abs().LessThan(decimal.New(1, precision-scale))
}
