package link

import "testing"

func TestEncode_Golden(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want string
	}{
		{
			name: "vless minimal",
			cfg: VLESSConfig{
				UUID: testUUID, Address: "example.com", Port: 443,
				Encryption: "none", Network: "tcp",
			},
			want: "vless://" + testUUID + "@example.com:443?encryption=none&type=tcp#Node",
		},
		{
			name: "vless full",
			cfg: VLESSConfig{
				UUID: testUUID, Address: "example.com", Port: 443,
				Encryption: "none", Flow: "xtls-rprx-vision", TLS: "tls",
				SNI: "cdn.example.com", ALPN: "h2,http/1.1", Network: "ws",
				Path: "/ws", Host: "cdn.example.com", HeaderType: "http",
			},
			want: "vless://" + testUUID + "@example.com:443" +
				"?encryption=none&type=ws&security=tls&sni=cdn.example.com" +
				"&flow=xtls-rprx-vision&alpn=h2%2Chttp%2F1.1&path=%2Fws" +
				"&host=cdn.example.com&headerType=http#Node",
		},
		{
			name: "trojan defaults",
			cfg: TrojanConfig{
				Password: "secret", Address: "a.com", Port: 443,
				TLS: "tls", Network: "tcp",
			},
			want: "trojan://secret@a.com:443?type=tcp&security=tls#Node",
		},
		{
			name: "shadowsocks",
			cfg: ShadowsocksConfig{
				Method: "aes-256-gcm", Password: "pass1234",
				Address: "example.com", Port: 8388,
			},
			want: "ss://YWVzLTI1Ni1nY206cGFzczEyMzQ=@example.com:8388#Node",
		},
		{
			name: "hysteria1 no optionals",
			cfg: Hysteria1Config{
				AuthString: "auth string", Address: "a.com", Port: 443,
			},
			want: "hysteria://auth%20string@a.com:443#Node",
		},
		{
			name: "hysteria1 defaults",
			cfg: Hysteria1Config{
				AuthString: "authpass", Address: "a.com", Port: 443,
				TLS: "tls", ALPN: "h2",
			},
			want: "hysteria://authpass@a.com:443?tls=1&alpn=h2#Node",
		},
		{
			name: "hysteria2 with obfs",
			cfg: Hysteria2Config{
				Password: "p@ss w", Address: "a.com", Port: 443,
				TLS: "tls", SNI: "a.com", ALPN: "h3",
				Obfs: "salamander", ObfsPassword: "ob fs",
			},
			want: "hy2://p%40ss%20w@a.com:443" +
				"?tls=1&sni=a.com&alpn=h3&obfs=salamander&obfs-password=ob+fs#Node",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.cfg, "Node")
			if err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Encode() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestEncode_VMessGolden(t *testing.T) {
	cfg := VMessConfig{
		UUID: testUUID, Address: "vm.example.com", Port: 8443,
		AlterID: 0, Cipher: "auto", Network: "tcp",
	}
	got, err := Encode(cfg, "Test Server")
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	want := "vmess://eyJ2IjoiMiIsInBzIjoiVGVzdCBTZXJ2ZXIiLCJhZGQiOiJ2bS5leGFtcGxlLmNvbSIsInBvcnQiOjg0NDMsImlkIjoiYjgzMTM4MWQtNjMyNC00ZDUzLWFkNGYtOGNkYTQ4YjMwODExIiwiYWlkIjowLCJuZXQiOiJ0Y3AiLCJ0eXBlIjoibm9uZSIsInRscyI6IiIsInNuaSI6IiIsImNpcGhlciI6ImF1dG8ifQ=="
	if got != want {
		t.Errorf("Encode() =\n  %q\nwant\n  %q", got, want)
	}
}

func TestPercentEncode(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"with space", "with%20space"},
		{"keep/slash", "keep/slash"},
		{"a#b?c&d", "a%23b%3Fc%26d"},
		{"café", "caf%C3%A9"},
		{"100%", "100%25"},
	}
	for _, tt := range tests {
		if got := percentEncode(tt.in); got != tt.want {
			t.Errorf("percentEncode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
