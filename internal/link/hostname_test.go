package link

import "testing"

func TestIsValidDomain(t *testing.T) {
	valid := []string{
		"example.com",
		"sub.example.com",
		"a-b.example.co.uk",
		"Example.COM",
		"xn--bcher-kva.example",
	}
	for _, d := range valid {
		if !IsValidDomain(d) {
			t.Errorf("IsValidDomain(%q) = false, want true", d)
		}
	}

	invalid := []string{
		"",
		"localhost",
		"-bad.example.com",
		"example",
		"exa mple.com",
		"192.168.1.1",
	}
	for _, d := range invalid {
		if IsValidDomain(d) {
			t.Errorf("IsValidDomain(%q) = true, want false", d)
		}
	}
}

func TestIsValidIP(t *testing.T) {
	valid := []string{
		"1.2.3.4",
		"255.255.255.255",
		"0.0.0.0",
		"2001:db8:0:0:0:0:2:1",
		"fe80::",
	}
	for _, ip := range valid {
		if !IsValidIP(ip) {
			t.Errorf("IsValidIP(%q) = false, want true", ip)
		}
	}

	invalid := []string{
		"",
		"256.1.1.1",
		"1.2.3",
		"example.com",
		"1.2.3.4.5",
	}
	for _, ip := range invalid {
		if IsValidIP(ip) {
			t.Errorf("IsValidIP(%q) = true, want false", ip)
		}
	}
}

func TestIsValidHostname(t *testing.T) {
	if !IsValidHostname("example.com") || !IsValidHostname("10.0.0.1") {
		t.Error("domains and IPs should both be valid hostnames")
	}
	if IsValidHostname("not valid!") {
		t.Error("garbage should not be a valid hostname")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		in   string
		want ProtocolKind
		ok   bool
	}{
		{"vless", VLESS, true},
		{"VLESS", VLESS, true},
		{"vmess", VMess, true},
		{"trojan", Trojan, true},
		{"ss", Shadowsocks, true},
		{"shadowsocks", Shadowsocks, true},
		{"hy", Hysteria1, true},
		{"hysteria", Hysteria1, true},
		{"hysteria1", Hysteria1, true},
		{"hy2", Hysteria2, true},
		{"Hysteria2", Hysteria2, true},
		{"socks5", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := Resolve(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Resolve(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSchemes(t *testing.T) {
	want := map[ProtocolKind]string{
		VLESS:       "vless",
		VMess:       "vmess",
		Trojan:      "trojan",
		Shadowsocks: "ss",
		Hysteria1:   "hysteria",
		Hysteria2:   "hy2",
	}
	for _, k := range Kinds {
		if got := k.Scheme(); got != want[k] {
			t.Errorf("%s.Scheme() = %q, want %q", k, got, want[k])
		}
	}
}
