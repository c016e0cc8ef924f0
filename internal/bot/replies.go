package bot

import (
	"fmt"
	"strings"

	"v2link/internal/link"
)

const welcomeText = `🚀 Welcome to V2Ray Converter Bot!

I can convert JSON V2Ray configurations to shareable links.

Supported protocols:
✅ VLESS
✅ VMess
✅ Trojan
✅ Shadowsocks
✅ Hysteria 1
✅ Hysteria 2

Send /convert to start converting a configuration.
Send /help for more information.`

const helpText = `📖 Help & Instructions

Commands:
/start - Show welcome message
/help - Show this help message
/convert - Start configuration conversion
/protocols - List supported protocols
/cancel - Abort the current conversion

How to convert:
1️⃣ Use /convert
2️⃣ Send your JSON configuration
3️⃣ Enter a name/remark for the server
4️⃣ Get your link!

JSON format example:
{
  "protocol": "vless",
  "uuid": "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx",
  "address": "example.com",
  "port": 443
}

Required fields by protocol:
🔹 VLESS: protocol, uuid, address, port
🔹 VMess: protocol, uuid, address, port
🔹 Trojan: protocol, password, address, port
🔹 Shadowsocks: protocol, method, password, address, port
🔹 Hysteria: protocol, authString, address, port
🔹 Hysteria2: protocol, password, address, port

Optional fields: tls, sni, alpn, path, host, network, and more.`

const promptJSONText = `📝 Send your JSON configuration

Paste the JSON for your server, for example:
{
  "protocol": "vless",
  "uuid": "uuid-here",
  "address": "server.com",
  "port": 443
}

Or use /cancel to exit.`

const promptNameText = `✅ JSON configuration received!

Now enter a name/remark for this server
(e.g. "My VPN Server", "Fast Server").

Or use /cancel to exit.`

const cancelledText = `❌ Conversion cancelled.

Use /convert to start again or /help for more information.`

const rateLimitedText = `🚦 Slow down! You have hit the request limit.

Please wait a minute and try again.`

const idleHintText = `Use /convert to convert a configuration, or /help for instructions.`

// protocolsText renders the /protocols listing from the registry so the
// reply can never drift from what the converter actually accepts.
func protocolsText() string {
	var b strings.Builder
	b.WriteString("📡 Supported protocols\n\n")
	for _, k := range link.Kinds {
		fmt.Fprintf(&b, "🔹 %s (%s)\n", k, strings.Join(k.Aliases(), ", "))
		fmt.Fprintf(&b, "    required: %s\n", strings.Join(link.RequiredFields(k), ", "))
	}
	b.WriteString("\nAliases are accepted in the \"protocol\" field, case-insensitive.")
	return b.String()
}
