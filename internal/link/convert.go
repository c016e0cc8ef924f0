package link

import (
	"encoding/json"
	"strings"
)

const (
	// MaxNameLen bounds the display name after sanitization.
	MaxNameLen = 100

	// DefaultName is the remark used when no usable display name is supplied.
	DefaultName = "V2Ray Server"
)

// Convert turns a JSON server description into its canonical share link.
// It parses the text, resolves the protocol, validates against the protocol
// schema and encodes the result. Every failure mode surfaces as one of the
// typed errors in this package; each call is independent and side-effect-free.
func Convert(jsonText, name string) (string, error) {
	name = SanitizeText(name, MaxNameLen)
	if name == "" {
		name = DefaultName
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return "", &ParseError{Err: err}
	}

	proto, _ := raw["protocol"].(string)
	proto = strings.TrimSpace(proto)
	if proto == "" {
		return "", &MissingProtocolError{}
	}

	kind, ok := Resolve(proto)
	if !ok {
		return "", &UnsupportedProtocolError{Given: proto, Supported: Supported()}
	}

	cfg, err := Validate(kind, raw)
	if err != nil {
		return "", err
	}

	uri, err := Encode(cfg, name)
	if err != nil {
		return "", &InternalEncodingError{Kind: kind, Err: err}
	}
	return uri, nil
}
