package link

// Config is a validated, normalized protocol configuration. Values are
// produced exclusively by Validate; encoders trust their invariants and do
// not re-check fields.
type Config interface {
	Kind() ProtocolKind
}

// VLESSConfig is the validated form of a VLESS server description.
type VLESSConfig struct {
	UUID    string
	Address string
	Port    int

	Encryption string // defaults to "none"
	Flow       string
	TLS        string
	SNI        string
	ALPN       string
	Network    string // defaults to "tcp"
	Path       string
	Host       string
	HeaderType string
}

func (VLESSConfig) Kind() ProtocolKind { return VLESS }

// VMessConfig is the validated form of a VMess server description.
type VMessConfig struct {
	UUID    string
	Address string
	Port    int

	AlterID int    // 0 unless set
	Cipher  string // defaults to "auto"
	TLS     string
	SNI     string
	Network string // defaults to "tcp"
	Path    string
	Host    string
}

func (VMessConfig) Kind() ProtocolKind { return VMess }

// TrojanConfig is the validated form of a Trojan server description.
type TrojanConfig struct {
	Password string
	Address  string
	Port     int

	TLS     string // defaults to "tls"
	SNI     string
	ALPN    string
	Network string // defaults to "tcp"
	Path    string
	Host    string
}

func (TrojanConfig) Kind() ProtocolKind { return Trojan }

// ShadowsocksConfig is the validated form of a Shadowsocks server description.
type ShadowsocksConfig struct {
	Method   string
	Password string
	Address  string
	Port     int
}

func (ShadowsocksConfig) Kind() ProtocolKind { return Shadowsocks }

// Hysteria1Config is the validated form of a Hysteria v1 server description.
type Hysteria1Config struct {
	AuthString string
	Address    string
	Port       int

	TLS            string // defaults to "tls"
	SNI            string
	ALPN           string // defaults to "h2"
	ProtocolString string
}

func (Hysteria1Config) Kind() ProtocolKind { return Hysteria1 }

// Hysteria2Config is the validated form of a Hysteria v2 server description.
type Hysteria2Config struct {
	Password string
	Address  string
	Port     int

	TLS          string // defaults to "tls"
	SNI          string
	ALPN         string // defaults to "h3"
	Obfs         string
	ObfsPassword string
}

func (Hysteria2Config) Kind() ProtocolKind { return Hysteria2 }
