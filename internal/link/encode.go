package link

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// queryString builds a query preserving insertion order. url.Values.Encode
// sorts keys alphabetically, which would break the declared parameter order.
type queryString struct {
	pairs []string
}

func (q *queryString) add(key, value string) {
	q.pairs = append(q.pairs, key+"="+url.QueryEscape(value))
}

// addPresent appends the parameter only when the value is non-empty.
// Empty-string optional fields are treated the same as absent ones.
func (q *queryString) addPresent(key, value string) {
	if value != "" {
		q.add(key, value)
	}
}

func (q *queryString) empty() bool    { return len(q.pairs) == 0 }
func (q *queryString) String() string { return strings.Join(q.pairs, "&") }

const percentSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-._~/"

// percentEncode escapes everything outside RFC 3986 unreserved (plus '/'),
// spaces and multi-byte UTF-8 included. Used for fragments and for the
// hysteria userinfo segments.
func percentEncode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(percentSafe, c) >= 0 {
			b.WriteByte(c)
		} else {
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// Encode renders a validated configuration and display name as the
// protocol's canonical share link. Pure and deterministic; encoders trust
// the schema's invariants and never validate.
func Encode(cfg Config, name string) (string, error) {
	switch c := cfg.(type) {
	case VLESSConfig:
		return encodeVLESS(c, name), nil
	case VMessConfig:
		return encodeVMess(c, name)
	case TrojanConfig:
		return encodeTrojan(c, name), nil
	case ShadowsocksConfig:
		return encodeShadowsocks(c, name), nil
	case Hysteria1Config:
		return encodeHysteria1(c, name), nil
	case Hysteria2Config:
		return encodeHysteria2(c, name), nil
	}
	return "", fmt.Errorf("no encoder for config type %T", cfg)
}

func encodeVLESS(c VLESSConfig, name string) string {
	q := &queryString{}
	q.add("encryption", c.Encryption)
	q.add("type", c.Network)
	q.addPresent("security", c.TLS)
	q.addPresent("sni", c.SNI)
	q.addPresent("flow", c.Flow)
	q.addPresent("alpn", c.ALPN)
	q.addPresent("path", c.Path)
	q.addPresent("host", c.Host)
	q.addPresent("headerType", c.HeaderType)

	return fmt.Sprintf("vless://%s@%s:%d?%s#%s",
		c.UUID, c.Address, c.Port, q, percentEncode(name))
}

// vmessPayload mirrors the v2rayN JSON layout; field order is fixed and
// port/aid stay numeric.
type vmessPayload struct {
	V    string `json:"v"`
	Ps   string `json:"ps"`
	Add  string `json:"add"`
	Port int    `json:"port"`
	ID   string `json:"id"`
	Aid  int    `json:"aid"`
	Net  string `json:"net"`
	Type string `json:"type"`
	TLS  string `json:"tls"`
	SNI  string `json:"sni"`

	Path   string `json:"path,omitempty"`
	Host   string `json:"host,omitempty"`
	Cipher string `json:"cipher,omitempty"`
}

func encodeVMess(c VMessConfig, name string) (string, error) {
	payload := vmessPayload{
		V:      "2",
		Ps:     name,
		Add:    c.Address,
		Port:   c.Port,
		ID:     c.UUID,
		Aid:    c.AlterID,
		Net:    c.Network,
		Type:   "none",
		TLS:    c.TLS,
		SNI:    c.SNI,
		Path:   c.Path,
		Host:   c.Host,
		Cipher: c.Cipher,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("vmess payload: %w", err)
	}
	return "vmess://" + base64.StdEncoding.EncodeToString(b), nil
}

func encodeTrojan(c TrojanConfig, name string) string {
	q := &queryString{}
	q.add("type", c.Network)
	q.addPresent("security", c.TLS)
	q.addPresent("sni", c.SNI)
	q.addPresent("alpn", c.ALPN)
	q.addPresent("path", c.Path)
	q.addPresent("host", c.Host)

	return fmt.Sprintf("trojan://%s@%s:%d?%s#%s",
		c.Password, c.Address, c.Port, q, percentEncode(name))
}

func encodeShadowsocks(c ShadowsocksConfig, name string) string {
	userinfo := base64.StdEncoding.EncodeToString(
		[]byte(c.Method + ":" + c.Password))

	return fmt.Sprintf("ss://%s@%s:%d#%s",
		userinfo, c.Address, c.Port, percentEncode(name))
}

func encodeHysteria1(c Hysteria1Config, name string) string {
	q := &queryString{}
	if c.TLS != "" {
		q.add("tls", "1")
	}
	q.addPresent("sni", c.SNI)
	q.addPresent("alpn", c.ALPN)
	q.addPresent("protocol", c.ProtocolString)

	uri := fmt.Sprintf("hysteria://%s@%s:%d",
		percentEncode(c.AuthString), c.Address, c.Port)
	if !q.empty() {
		uri += "?" + q.String()
	}
	return uri + "#" + percentEncode(name)
}

func encodeHysteria2(c Hysteria2Config, name string) string {
	q := &queryString{}
	if c.TLS != "" {
		q.add("tls", "1")
	}
	q.addPresent("sni", c.SNI)
	q.addPresent("alpn", c.ALPN)
	q.addPresent("obfs", c.Obfs)
	q.addPresent("obfs-password", c.ObfsPassword)

	uri := fmt.Sprintf("hy2://%s@%s:%d",
		percentEncode(c.Password), c.Address, c.Port)
	if !q.empty() {
		uri += "?" + q.String()
	}
	return uri + "#" + percentEncode(name)
}
