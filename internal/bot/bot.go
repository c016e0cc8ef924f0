package bot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"v2link/internal/db"
	"v2link/internal/geoip"
	"v2link/internal/link"
	"v2link/internal/logger"
	"v2link/internal/ratelimit"

	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/message"
	"github.com/gotd/td/telegram/message/styling"
	"github.com/gotd/td/tg"
	"gorm.io/gorm"
)

// Options configures a bot run.
type Options struct {
	APIID       int
	APIHash     string
	BotToken    string
	SessionFile string

	Limiter  *ratelimit.Limiter
	IdleTTL  time.Duration
	MaxUsers int

	// DB is the optional usage store. Nil disables recording.
	DB *gorm.DB
}

// Bot is the Telegram front end of the converter. All conversion work is
// delegated to the link package; the bot only manages conversation state.
type Bot struct {
	opts     Options
	sender   *message.Sender
	sessions *sessions
}

// Run connects to Telegram with the bot token and serves updates until the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	dispatcher := tg.NewUpdateDispatcher()
	client := telegram.NewClient(opts.APIID, opts.APIHash, telegram.Options{
		SessionStorage: &telegram.FileSessionStorage{Path: opts.SessionFile},
		UpdateHandler:  dispatcher,
	})

	b := &Bot{
		opts:     opts,
		sender:   message.NewSender(client.API()),
		sessions: newSessions(),
	}
	dispatcher.OnNewMessage(b.onNewMessage)

	return client.Run(ctx, func(ctx context.Context) error {
		status, err := client.Auth().Status(ctx)
		if err != nil {
			return fmt.Errorf("auth status: %w", err)
		}
		if !status.Authorized {
			if _, err := client.Auth().Bot(ctx, opts.BotToken); err != nil {
				return fmt.Errorf("bot login failed: %w", err)
			}
		}

		logger.Log.Info("🤖 Bot login successful, listening for updates...")
		go b.evictLoop(ctx)

		<-ctx.Done()
		return ctx.Err()
	})
}

// evictLoop periodically drops idle rate-limiter entries and stale
// conversations.
func (b *Bot) evictLoop(ctx context.Context) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.opts.Limiter.Evict(b.opts.IdleTTL, b.opts.MaxUsers)
			b.sessions.evictStale(b.opts.IdleTTL)
		}
	}
}

func (b *Bot) onNewMessage(ctx context.Context, e tg.Entities, u *tg.UpdateNewMessage) error {
	m, ok := u.Message.(*tg.Message)
	if !ok || m.Out {
		return nil
	}
	peer, ok := m.PeerID.(*tg.PeerUser)
	if !ok {
		// Private chats only; group noise is ignored.
		return nil
	}
	userID := peer.UserID
	text := strings.TrimSpace(m.Message)
	if text == "" {
		return nil
	}

	reply := func(parts ...styling.StyledTextOption) error {
		_, err := b.sender.Reply(e, u).StyledText(ctx, parts...)
		return err
	}

	if !b.opts.Limiter.Allow(userID) {
		logger.Log.Warnf("User %d is rate limited", userID)
		return reply(styling.Plain(rateLimitedText))
	}

	switch text {
	case "/start":
		logger.Log.Infof("User %d started the bot", userID)
		b.sessions.clear(userID)
		return reply(styling.Plain(welcomeText))
	case "/help":
		b.sessions.clear(userID)
		return reply(styling.Plain(helpText))
	case "/protocols":
		return reply(styling.Plain(protocolsText()))
	case "/convert":
		logger.Log.Infof("User %d started a conversion", userID)
		b.sessions.awaitJSON(userID)
		return reply(styling.Plain(promptJSONText))
	case "/cancel":
		logger.Log.Infof("User %d cancelled the conversion", userID)
		b.sessions.clear(userID)
		return reply(styling.Plain(cancelledText))
	}

	switch b.sessions.stateOf(userID) {
	case stateAwaitJSON:
		return b.receiveJSON(userID, text, reply)
	case stateAwaitName:
		return b.receiveName(userID, text, reply)
	}
	return reply(styling.Plain(idleHintText))
}

// receiveJSON validates the submitted JSON just enough to continue the
// conversation; full schema validation happens at conversion time.
func (b *Bot) receiveJSON(userID int64, text string, reply replyFunc) error {
	jsonText := ExtractJSON(text)

	var raw map[string]any
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		logger.Log.Warnf("User %d sent invalid JSON: %v", userID, err)
		return reply(
			styling.Plain("❌ Invalid JSON format\n\n"),
			styling.Plain(fmt.Sprintf("Error: %v\n\n", err)),
			styling.Plain("Please send valid JSON or use /cancel to exit."),
		)
	}
	if proto, _ := raw["protocol"].(string); strings.TrimSpace(proto) == "" {
		return reply(
			styling.Plain("❌ Missing protocol field\n\n"),
			styling.Plain("Your JSON must include a \"protocol\" field.\n"),
			styling.Plain("Supported: "+strings.Join(link.Supported(), ", ")),
		)
	}

	b.sessions.stage(userID, jsonText)
	logger.Log.Infof("User %d submitted valid JSON", userID)
	return reply(styling.Plain(promptNameText))
}

// receiveName finishes the flow: sanitize the display name, convert, reply.
func (b *Bot) receiveName(userID int64, text string, reply replyFunc) error {
	name := link.SanitizeText(text, link.MaxNameLen)
	if name == "" {
		return reply(styling.Plain("❌ Please enter a valid name for the server."))
	}

	jsonText, ok := b.sessions.take(userID)
	if !ok {
		return reply(styling.Plain("❌ Configuration not found. Please start over with /convert"))
	}

	uri, err := link.Convert(jsonText, name)
	if err != nil {
		logger.Log.Warnf("User %d conversion failed: %v", userID, err)
		return b.replyConversionError(err, reply)
	}

	kind := kindOf(uri)
	logger.Log.Infof("User %d converted a %s config", userID, kind)
	b.record(userID, kind)

	parts := []styling.StyledTextOption{
		styling.Plain("✅ Conversion successful!\n\n"),
		styling.Plain("Server name: " + name + "\n"),
	}
	if country, found := geoip.Country(serverAddress(jsonText)); found {
		parts = append(parts, styling.Plain(
			fmt.Sprintf("Server location: %s %s\n", geoip.Flag(country), country)))
	}
	parts = append(parts,
		styling.Plain("\n"),
		styling.Code(uri),
		styling.Plain("\n\nShare this link or paste it into your client."),
	)
	return reply(parts...)
}

type replyFunc func(parts ...styling.StyledTextOption) error

func (b *Bot) replyConversionError(err error, reply replyFunc) error {
	var internal *link.InternalEncodingError
	if errors.As(err, &internal) {
		logger.Log.Errorf("Encoder defect: %v", err)
		return reply(styling.Plain("❌ An unexpected error occurred. Our developers have been notified."))
	}
	return reply(
		styling.Plain("❌ Conversion error\n\n"),
		styling.Plain(err.Error()+"\n\n"),
		styling.Plain("Check your configuration and try again with /convert."),
	)
}

func (b *Bot) record(userID int64, protocol string) {
	if b.opts.DB == nil {
		return
	}
	if err := db.RecordConversion(b.opts.DB, userID, protocol, "bot"); err != nil {
		logger.Log.Warnf("Failed to record conversion: %v", err)
	}
}

// kindOf recovers the protocol from the emitted scheme token.
func kindOf(uri string) string {
	scheme, _, ok := strings.Cut(uri, "://")
	if !ok {
		return "unknown"
	}
	for _, k := range link.Kinds {
		if k.Scheme() == scheme {
			return k.String()
		}
	}
	return scheme
}

// serverAddress peeks at the staged JSON for the address field. Best effort,
// used only for the optional GeoIP annotation.
func serverAddress(jsonText string) string {
	var raw map[string]any
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return ""
	}
	addr, _ := raw["address"].(string)
	return addr
}
