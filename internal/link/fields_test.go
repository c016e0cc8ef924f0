package link

import (
	"strings"
	"testing"
)

func TestValidateUUID(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		valid bool
	}{
		{"canonical lowercase", "b831381d-6324-4d53-ad4f-8cda48b30811", true},
		{"uppercase accepted", "B831381D-6324-4D53-AD4F-8CDA48B30811", true},
		{"not a uuid", "not-a-uuid", false},
		{"missing hyphens", "b831381d63244d53ad4f8cda48b30811", false},
		{"braced form rejected", "{b831381d-6324-4d53-ad4f-8cda48b30811}", false},
		{"urn form rejected", "urn:uuid:b831381d-6324-4d53-ad4f-8cda48b30811", false},
		{"non-hex", "g831381d-6324-4d53-ad4f-8cda48b30811", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUUID(tt.in)
			if (err == nil) != tt.valid {
				t.Errorf("ValidateUUID(%q) = %v, want valid=%v", tt.in, err, tt.valid)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	for _, p := range []int{1, 80, 443, 65535} {
		if err := ValidatePort(p); err != nil {
			t.Errorf("ValidatePort(%d) = %v", p, err)
		}
	}
	for _, p := range []int{0, -1, 65536, 100000} {
		if err := ValidatePort(p); err == nil {
			t.Errorf("ValidatePort(%d) accepted out-of-range port", p)
		}
	}
}

func TestValidateAlterID(t *testing.T) {
	for _, n := range []int{0, 64, 65535} {
		if err := ValidateAlterID(n); err != nil {
			t.Errorf("ValidateAlterID(%d) = %v", n, err)
		}
	}
	for _, n := range []int{-1, 65536} {
		if err := ValidateAlterID(n); err == nil {
			t.Errorf("ValidateAlterID(%d) accepted out-of-range value", n)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("abcd"); err != nil {
		t.Errorf("four characters should pass: %v", err)
	}
	if err := ValidatePassword("abc"); err == nil {
		t.Error("three characters should fail")
	}
	if err := ValidatePassword(""); err == nil {
		t.Error("empty password should fail")
	}
}

func TestValidateCipherMethod(t *testing.T) {
	for _, m := range CipherMethods {
		if err := ValidateCipherMethod(m); err != nil {
			t.Errorf("ValidateCipherMethod(%q) = %v", m, err)
		}
	}

	err := ValidateCipherMethod("rc4")
	if err == nil {
		t.Fatal("rc4 should be rejected")
	}
	for _, m := range CipherMethods {
		if !strings.Contains(err.Error(), m) {
			t.Errorf("rejection message %q does not enumerate %q", err, m)
		}
	}
	if len(CipherMethods) != 10 {
		t.Errorf("allow-list has %d entries, want 10", len(CipherMethods))
	}
}

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"plain", "My Server", 100, "My Server"},
		{"control chars stripped", "a\x00b\x1fc", 100, "abc"},
		{"tab and newline kept", "a\tb\nc", 100, "a\tb\nc"},
		{"truncated", "abcdefgh", 4, "abcd"},
		{"trimmed", "  padded  ", 100, "padded"},
		{"unicode runes counted", "ééééé", 3, "ééé"},
		{"only control chars", "\x01\x02\x03", 100, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeText(tt.in, tt.max); got != tt.want {
				t.Errorf("SanitizeText(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
