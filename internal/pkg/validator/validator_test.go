package validator

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"123456", true},
		{"", false},
		{"12a4", false},
		{"-12", false},
	}
	for _, c := range cases {
		if got := IsNumeric(c.input); got != c.want {
			t.Errorf("IsNumeric(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-02-28"); !ok {
		t.Error("IsValidDate(2025-02-28) = false, want true")
	}
	for _, s := range []string{"2025-02-30", "28-02-2025", "", "2025/02/28"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	valid := []string{"+91 98765 43210", "9876543210", "0812-3456-7890"}
	invalid := []string{"12345", "+91abc43210", "", "1234567890123456", "1-2-3-4-5-6-7-8-9-0-1-2-3-4-5-6-7"}
	for _, p := range valid {
		if !IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPhoneNumber(p) {
			t.Errorf("IsValidPhoneNumber(%q) = true, want false", p)
		}
	}
}

func TestIsValidCompanyPrefix(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"DF", true},
		{"odoo", true},
		{"ABCDE", true},
		{"A", false},
		{"ABCDEF", false},
		{"A-B", false},
	}
	for _, c := range cases {
		if got := IsValidCompanyPrefix(c.input); got != c.want {
			t.Errorf("IsValidCompanyPrefix(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestMinLength(t *testing.T) {
	if !MinLength("password", 8) {
		t.Error("MinLength(password, 8) = false, want true")
	}
	if MinLength("pässwor", 8) {
		t.Error("MinLength(pässwor, 8) = true, want false")
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "password must be at least 8 characters"},
	}
	want := "email: email is required; password: password must be at least 8 characters"
	if got := errs.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidationErrors_ToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "start_date", Message: "start_date is required"},
	}
	m := errs.ToMap()
	if m["start_date"] != "start_date is required" {
		t.Errorf("ToMap()[start_date] = %q", m["start_date"])
	}
}

func TestMaxLength(t *testing.T) {
	if !MaxLength(strings.Repeat("é", 100), 100) {
		t.Error("MaxLength(100 runes, 100) = false, want true")
	}
	if MaxLength(strings.Repeat("a", 101), 100) {
		t.Error("MaxLength(101 runes, 100) = true, want false")
	}
}

func TestFitsNumeric(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"0", true},
		{"50000.5", true},
		{"9999999999.99", true},
		{"10000000000", false},
		{"4.175", false},
		{"4.170", true},
		{"-12.34", true},
	}
	for _, c := range cases {
		d := decimal.RequireFromString(c.input)
		if got := FitsNumeric(d, 12, 2); got != c.want {
			t.Errorf("FitsNumeric(%s, 12, 2) = %v, want %v", c.input, got, c.want)
		}
	}
	if FitsNumeric(decimal.NewFromInt(10000), 6, 2) {
		t.Error("FitsNumeric(10000, 6, 2) = true, want false")
	}
}
