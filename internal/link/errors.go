package link

import (
	"fmt"
	"strings"
)

// ParseError reports malformed JSON input. The request cannot proceed to
// schema lookup; the caller must resubmit corrected text.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid JSON format: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingProtocolError reports that the input has no usable "protocol" field.
type MissingProtocolError struct{}

func (e *MissingProtocolError) Error() string {
	return `configuration is missing a "protocol" field`
}

// UnsupportedProtocolError reports a protocol name outside the registry.
type UnsupportedProtocolError struct {
	Given     string
	Supported []string
}

func (e *UnsupportedProtocolError) Error() string {
	return fmt.Sprintf("unsupported protocol: %s. Supported: %s",
		e.Given, strings.Join(e.Supported, ", "))
}

// MissingFieldsError lists every required field absent from the input,
// not just the first one found.
type MissingFieldsError struct {
	Kind   ProtocolKind
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("missing required fields for %s: %s",
		e.Kind, strings.Join(e.Fields, ", "))
}

// FieldInvalidError reports the first field that failed its validator.
type FieldInvalidError struct {
	Field  string
	Reason string
}

func (e *FieldInvalidError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// InternalEncodingError wraps an encoder failure on a config the schema
// was supposed to guarantee valid. Treated as a defect, never retried.
type InternalEncodingError struct {
	Kind ProtocolKind
	Err  error
}

func (e *InternalEncodingError) Error() string {
	return fmt.Sprintf("internal %s encoding error: %v", e.Kind, e.Err)
}

func (e *InternalEncodingError) Unwrap() error { return e.Err }
