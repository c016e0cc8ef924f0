package link

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MinPasswordLen is the shortest password any schema accepts.
const MinPasswordLen = 4

// CipherMethods is the Shadowsocks cipher allow-list. The list is historical
// and preserved verbatim for compatibility with existing configurations.
var CipherMethods = []string{
	"aes-128-gcm", "aes-256-gcm", "chacha20-poly1305",
	"aes-128-ctr", "aes-192-ctr", "aes-256-ctr",
	"aes-128-cfb", "aes-192-cfb", "aes-256-cfb",
	"chacha20-ietf-poly1305",
}

// ValidateUUID accepts only the canonical 8-4-4-4-12 hyphenated form,
// case-insensitive. uuid.Parse alone is too lenient (braces, URN prefix,
// bare 32-hex), so the shape is checked first.
func ValidateUUID(s string) error {
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return fmt.Errorf("invalid UUID format: %s", s)
	}
	if _, err := uuid.Parse(s); err != nil {
		return fmt.Errorf("invalid UUID format: %s", s)
	}
	return nil
}

// ValidatePort checks the TCP/UDP port range.
func ValidatePort(n int) error {
	if n < 1 || n > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", n)
	}
	return nil
}

// ValidateAlterID checks the legacy VMess alterId range.
func ValidateAlterID(n int) error {
	if n < 0 || n > 65535 {
		return fmt.Errorf("alterId must be between 0 and 65535, got %d", n)
	}
	return nil
}

// ValidatePassword enforces the minimum credential length.
func ValidatePassword(s string) error {
	if len(s) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	return nil
}

// ValidateCipherMethod checks membership in the Shadowsocks allow-list.
func ValidateCipherMethod(s string) error {
	for _, m := range CipherMethods {
		if s == m {
			return nil
		}
	}
	return fmt.Errorf("invalid method. Supported: %s", strings.Join(CipherMethods, ", "))
}

// SanitizeText strips ASCII control characters (except newline and tab),
// truncates to maxLen runes and trims surrounding whitespace.
func SanitizeText(s string, maxLen int) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 32 || r == '\n' || r == '\t' {
			b.WriteRune(r)
		}
	}
	runes := []rune(b.String())
	if len(runes) > maxLen {
		runes = runes[:maxLen]
	}
	return strings.TrimSpace(string(runes))
}
