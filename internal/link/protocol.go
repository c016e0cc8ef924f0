package link

import "strings"

// ProtocolKind identifies one of the supported share-link protocols.
// The set is closed: every kind has exactly one schema and one encoder.
type ProtocolKind int

const (
	VLESS ProtocolKind = iota
	VMess
	Trojan
	Shadowsocks
	Hysteria1
	Hysteria2
)

// String returns the canonical protocol name.
func (k ProtocolKind) String() string {
	switch k {
	case VLESS:
		return "vless"
	case VMess:
		return "vmess"
	case Trojan:
		return "trojan"
	case Shadowsocks:
		return "shadowsocks"
	case Hysteria1:
		return "hysteria1"
	case Hysteria2:
		return "hysteria2"
	}
	return "unknown"
}

// Scheme returns the URI scheme token emitted for this protocol.
func (k ProtocolKind) Scheme() string {
	switch k {
	case Shadowsocks:
		return "ss"
	case Hysteria1:
		return "hysteria"
	case Hysteria2:
		return "hy2"
	default:
		return k.String()
	}
}

// Kinds lists every protocol in canonical order.
var Kinds = []ProtocolKind{VLESS, VMess, Trojan, Shadowsocks, Hysteria1, Hysteria2}

var protocolAliases = map[string]ProtocolKind{
	"vless":       VLESS,
	"vmess":       VMess,
	"trojan":      Trojan,
	"ss":          Shadowsocks,
	"shadowsocks": Shadowsocks,
	"hy":          Hysteria1,
	"hysteria":    Hysteria1,
	"hysteria1":   Hysteria1,
	"hy2":         Hysteria2,
	"hysteria2":   Hysteria2,
}

// supportedNames is the stable list used in error messages and /protocols output.
var supportedNames = []string{
	"vless", "vmess", "trojan", "ss", "shadowsocks",
	"hy", "hysteria", "hysteria1", "hy2", "hysteria2",
}

// Resolve maps a protocol name or alias (case-insensitive) to its kind.
func Resolve(name string) (ProtocolKind, bool) {
	k, ok := protocolAliases[strings.ToLower(name)]
	return k, ok
}

// Supported returns every accepted protocol name, aliases included.
func Supported() []string {
	out := make([]string, len(supportedNames))
	copy(out, supportedNames)
	return out
}

// Aliases returns the accepted input names for a kind, canonical name first.
func (k ProtocolKind) Aliases() []string {
	switch k {
	case Shadowsocks:
		return []string{"shadowsocks", "ss"}
	case Hysteria1:
		return []string{"hysteria1", "hysteria", "hy"}
	case Hysteria2:
		return []string{"hysteria2", "hy2"}
	default:
		return []string{k.String()}
	}
}
