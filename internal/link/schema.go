package link

import (
	"math"
	"strconv"
)

type fieldType int

const (
	stringField fieldType = iota
	intField
)

// fieldSpec declares one schema field: its canonical key, an optional input
// alias (alias wins when both keys are present), whether it is required, the
// default applied when absent or empty, and its validator.
type fieldSpec struct {
	name     string
	alias    string
	required bool
	typ      fieldType
	def      string
	defInt   int
	check    func(string) error
	checkInt func(int) error
}

// record holds the normalized field values produced by applySchema.
type record struct {
	strs map[string]string
	ints map[string]int
}

func (r *record) str(name string) string { return r.strs[name] }
func (r *record) num(name string) int    { return r.ints[name] }

// applySchema interprets a schema over the raw JSON object. Missing required
// fields are accumulated into a single MissingFieldsError; the first
// field-level validation failure short-circuits as FieldInvalidError.
func applySchema(kind ProtocolKind, specs []fieldSpec, raw map[string]any) (*record, error) {
	var missing []string
	for _, fs := range specs {
		if fs.required && lookupRaw(raw, fs) == nil {
			missing = append(missing, fs.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Kind: kind, Fields: missing}
	}

	rec := &record{strs: make(map[string]string), ints: make(map[string]int)}
	for _, fs := range specs {
		v := lookupRaw(raw, fs)
		switch fs.typ {
		case stringField:
			s := ""
			if v != nil {
				str, ok := v.(string)
				if !ok {
					return nil, &FieldInvalidError{Field: fs.name, Reason: "must be a string"}
				}
				s = str
			}
			if s == "" {
				s = fs.def
			}
			if fs.check != nil && (fs.required || s != "") {
				if err := fs.check(s); err != nil {
					return nil, &FieldInvalidError{Field: fs.name, Reason: err.Error()}
				}
			}
			rec.strs[fs.name] = s
		case intField:
			n := fs.defInt
			if v != nil {
				parsed, ok := toInt(v)
				if !ok {
					return nil, &FieldInvalidError{Field: fs.name, Reason: "must be an integer"}
				}
				n = parsed
			}
			if fs.checkInt != nil {
				if err := fs.checkInt(n); err != nil {
					return nil, &FieldInvalidError{Field: fs.name, Reason: err.Error()}
				}
			}
			rec.ints[fs.name] = n
		}
	}
	return rec, nil
}

// lookupRaw fetches a field value by alias, then canonical name.
// JSON null counts as absent.
func lookupRaw(raw map[string]any, fs fieldSpec) any {
	if fs.alias != "" {
		if v, ok := raw[fs.alias]; ok && v != nil {
			return v
		}
	}
	if v, ok := raw[fs.name]; ok && v != nil {
		return v
	}
	return nil
}

// toInt coerces a JSON scalar to an integer. Floats must be integral;
// numeric strings are accepted for parity with lenient clients.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case float64:
		if n != math.Trunc(n) {
			return 0, false
		}
		return int(n), true
	case int:
		return n, true
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 0, false
		}
		return parsed, true
	}
	return 0, false
}

var vlessSchema = []fieldSpec{
	{name: "uuid", alias: "id", required: true, check: ValidateUUID},
	{name: "address", required: true},
	{name: "port", required: true, typ: intField, checkInt: ValidatePort},
	{name: "encryption", def: "none"},
	{name: "flow"},
	{name: "tls"},
	{name: "sni"},
	{name: "alpn"},
	{name: "network", def: "tcp"},
	{name: "path"},
	{name: "host"},
	{name: "header_type", alias: "headerType"},
}

var vmessSchema = []fieldSpec{
	{name: "uuid", alias: "id", required: true, check: ValidateUUID},
	{name: "address", required: true},
	{name: "port", required: true, typ: intField, checkInt: ValidatePort},
	{name: "aid", typ: intField, checkInt: ValidateAlterID},
	{name: "cipher", def: "auto"},
	{name: "tls"},
	{name: "sni"},
	{name: "network", def: "tcp"},
	{name: "path"},
	{name: "host"},
}

var trojanSchema = []fieldSpec{
	{name: "password", required: true, check: ValidatePassword},
	{name: "address", required: true},
	{name: "port", required: true, typ: intField, checkInt: ValidatePort},
	{name: "tls", def: "tls"},
	{name: "sni"},
	{name: "alpn"},
	{name: "network", def: "tcp"},
	{name: "path"},
	{name: "host"},
}

var shadowsocksSchema = []fieldSpec{
	{name: "method", required: true, check: ValidateCipherMethod},
	{name: "password", required: true, check: ValidatePassword},
	{name: "address", required: true},
	{name: "port", required: true, typ: intField, checkInt: ValidatePort},
}

var hysteria1Schema = []fieldSpec{
	{name: "auth_string", alias: "authString", required: true},
	{name: "address", required: true},
	{name: "port", required: true, typ: intField, checkInt: ValidatePort},
	{name: "tls", def: "tls"},
	{name: "sni"},
	{name: "alpn", def: "h2"},
	{name: "protocol_string", alias: "protocolString"},
}

var hysteria2Schema = []fieldSpec{
	{name: "password", required: true, check: ValidatePassword},
	{name: "address", required: true},
	{name: "port", required: true, typ: intField, checkInt: ValidatePort},
	{name: "tls", def: "tls"},
	{name: "sni"},
	{name: "alpn", def: "h3"},
	{name: "obfs"},
	{name: "obfs_password", alias: "obfsPassword"},
}

func schemaFor(kind ProtocolKind) []fieldSpec {
	switch kind {
	case VLESS:
		return vlessSchema
	case VMess:
		return vmessSchema
	case Trojan:
		return trojanSchema
	case Shadowsocks:
		return shadowsocksSchema
	case Hysteria1:
		return hysteria1Schema
	case Hysteria2:
		return hysteria2Schema
	}
	return nil
}

// RequiredFields lists the required input keys for a protocol, in schema order.
func RequiredFields(kind ProtocolKind) []string {
	var out []string
	for _, fs := range schemaFor(kind) {
		if fs.required {
			out = append(out, fs.name)
		}
	}
	return out
}

// Validate runs the schema for kind over a raw JSON object and returns the
// typed configuration. The switch is exhaustive over ProtocolKind.
func Validate(kind ProtocolKind, raw map[string]any) (Config, error) {
	switch kind {
	case VLESS:
		rec, err := applySchema(kind, vlessSchema, raw)
		if err != nil {
			return nil, err
		}
		return VLESSConfig{
			UUID:       rec.str("uuid"),
			Address:    rec.str("address"),
			Port:       rec.num("port"),
			Encryption: rec.str("encryption"),
			Flow:       rec.str("flow"),
			TLS:        rec.str("tls"),
			SNI:        rec.str("sni"),
			ALPN:       rec.str("alpn"),
			Network:    rec.str("network"),
			Path:       rec.str("path"),
			Host:       rec.str("host"),
			HeaderType: rec.str("header_type"),
		}, nil
	case VMess:
		rec, err := applySchema(kind, vmessSchema, raw)
		if err != nil {
			return nil, err
		}
		return VMessConfig{
			UUID:    rec.str("uuid"),
			Address: rec.str("address"),
			Port:    rec.num("port"),
			AlterID: rec.num("aid"),
			Cipher:  rec.str("cipher"),
			TLS:     rec.str("tls"),
			SNI:     rec.str("sni"),
			Network: rec.str("network"),
			Path:    rec.str("path"),
			Host:    rec.str("host"),
		}, nil
	case Trojan:
		rec, err := applySchema(kind, trojanSchema, raw)
		if err != nil {
			return nil, err
		}
		return TrojanConfig{
			Password: rec.str("password"),
			Address:  rec.str("address"),
			Port:     rec.num("port"),
			TLS:      rec.str("tls"),
			SNI:      rec.str("sni"),
			ALPN:     rec.str("alpn"),
			Network:  rec.str("network"),
			Path:     rec.str("path"),
			Host:     rec.str("host"),
		}, nil
	case Shadowsocks:
		rec, err := applySchema(kind, shadowsocksSchema, raw)
		if err != nil {
			return nil, err
		}
		return ShadowsocksConfig{
			Method:   rec.str("method"),
			Password: rec.str("password"),
			Address:  rec.str("address"),
			Port:     rec.num("port"),
		}, nil
	case Hysteria1:
		rec, err := applySchema(kind, hysteria1Schema, raw)
		if err != nil {
			return nil, err
		}
		return Hysteria1Config{
			AuthString:     rec.str("auth_string"),
			Address:        rec.str("address"),
			Port:           rec.num("port"),
			TLS:            rec.str("tls"),
			SNI:            rec.str("sni"),
			ALPN:           rec.str("alpn"),
			ProtocolString: rec.str("protocol_string"),
		}, nil
	case Hysteria2:
		rec, err := applySchema(kind, hysteria2Schema, raw)
		if err != nil {
			return nil, err
		}
		return Hysteria2Config{
			Password:     rec.str("password"),
			Address:      rec.str("address"),
			Port:         rec.num("port"),
			TLS:          rec.str("tls"),
			SNI:          rec.str("sni"),
			ALPN:         rec.str("alpn"),
			Obfs:         rec.str("obfs"),
			ObfsPassword: rec.str("obfs_password"),
		}, nil
	}
	return nil, &UnsupportedProtocolError{Given: kind.String(), Supported: Supported()}
}
