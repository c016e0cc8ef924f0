package bot

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "bare object",
			in:   `{"protocol":"vless"}`,
			want: `{"protocol":"vless"}`,
		},
		{
			name: "surrounding whitespace",
			in:   "  \n{\"protocol\":\"vless\"}\n  ",
			want: `{"protocol":"vless"}`,
		},
		{
			name: "code fence",
			in:   "```\n{\"protocol\":\"ss\"}\n```",
			want: `{"protocol":"ss"}`,
		},
		{
			name: "json code fence",
			in:   "```json\n{\"protocol\":\"ss\"}\n```",
			want: `{"protocol":"ss"}`,
		},
		{
			name: "commentary around object",
			in:   "here is my config: {\"protocol\":\"trojan\"} thanks!",
			want: `{"protocol":"trojan"}`,
		},
		{
			name: "no braces passes through",
			in:   "not json",
			want: "not json",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.in); got != tt.want {
				t.Errorf("ExtractJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
