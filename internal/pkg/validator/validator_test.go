package validator

import (
	"testing"
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

func TestIsValidRFC(t *testing.T) {
	valid := []string{
		"GODE561231GR8", // persona física
		"gode561231gr8", // lowercase accepted
		"AAA010101AAA",  // persona moral (3 letters)
	}
	invalid := []string{
		"GODE5612319",     // homoclave too short
		"GO561231GR8",     // too few letters
		"GODE56123QGR8",   // letter in date part
		"GODE561231GR8X9", // too long
		"",
	}
	for _, rfc := range valid {
		if !IsValidRFC(rfc) {
			t.Errorf("IsValidRFC(%q) = false, want true", rfc)
		}
	}
	for _, rfc := range invalid {
		if IsValidRFC(rfc) {
			t.Errorf("IsValidRFC(%q) = true, want false", rfc)
		}
	}
}

func TestIsValidCURP(t *testing.T) {
	valid := []string{
		"GODE561231HDFNRN09",
		"mahj280111mdfrrn02",
	}
	invalid := []string{
		"GODE561231HDFNRN0",   // 17 chars
		"GODE561231XDFNRN09",  // sex marker must be H or M
		"G0DE561231HDFNRN09",  // digit where letter expected
		"",
	}
	for _, curp := range valid {
		if !IsValidCURP(curp) {
			t.Errorf("IsValidCURP(%q) = false, want true", curp)
		}
	}
	for _, curp := range invalid {
		if IsValidCURP(curp) {
			t.Errorf("IsValidCURP(%q) = true, want false", curp)
		}
	}
}

func TestIsValidNSS(t *testing.T) {
	if !IsValidNSS("12345678901") {
		t.Errorf("IsValidNSS(11 digits) = false, want true")
	}
	for _, nss := range []string{"1234567890", "123456789012", "1234567890a", ""} {
		if IsValidNSS(nss) {
			t.Errorf("IsValidNSS(%q) = true, want false", nss)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-02-29"); !ok {
		t.Errorf("IsValidDate(2024-02-29) = false, want true")
	}
	if _, ok := IsValidDate("2023-02-29"); ok {
		t.Errorf("IsValidDate(2023-02-29) = true, want false")
	}
	if _, ok := IsValidDate("15-01-2024"); ok {
		t.Errorf("IsValidDate(15-01-2024) = true, want false")
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	if !IsValidEmployeeCode("2024-0001") {
		t.Errorf("IsValidEmployeeCode(2024-0001) = false, want true")
	}
	for _, code := range []string{"20240001", "2024-001", "abcd-0001"} {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}
