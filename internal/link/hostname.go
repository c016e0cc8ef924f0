package link

import (
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// Standalone address validators. The schemas do not call these (server
// addresses are passed through untouched, matching client behavior), but
// callers that want to pre-flight user input can.

var (
	domainPattern = regexp.MustCompile(`^(?:[a-z0-9](?:[a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)
	ipv4Pattern   = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)
	// Simplified IPv6 grammar: full form, or a single "::" compression.
	ipv6Pattern = regexp.MustCompile(`^(([0-9a-fA-F]{1,4}:){7}[0-9a-fA-F]{1,4}|([0-9a-fA-F]{1,4}:){1,7}:|([0-9a-fA-F]{1,4}:){1,6}:[0-9a-fA-F]{1,4})$`)
)

// IsValidDomain reports whether s is a dotted domain name. Unicode names are
// converted to their ASCII (punycode) form before matching.
func IsValidDomain(s string) bool {
	s = strings.ToLower(s)
	if ascii, err := idna.Lookup.ToASCII(s); err == nil {
		s = ascii
	}
	return domainPattern.MatchString(s)
}

// IsValidIP reports whether s is an IPv4 dotted quad or a simplified IPv6 literal.
func IsValidIP(s string) bool {
	return ipv4Pattern.MatchString(s) || ipv6Pattern.MatchString(s)
}

// IsValidHostname reports whether s is a domain name or an IP literal.
func IsValidHostname(s string) bool {
	return IsValidDomain(s) || IsValidIP(s)
}
