package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"v2link/internal/bot"
	"v2link/internal/config"
	"v2link/internal/db"
	"v2link/internal/geoip"
	"v2link/internal/logger"
	"v2link/internal/ratelimit"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var botCmd = &cobra.Command{
	Use:   "bot",
	Short: "Run the Telegram conversion bot",
	Long:  `Starts the Telegram bot that walks users through converting a JSON configuration into a shareable link.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			logger.Log.Fatalf("Error loading config: %v", err)
		}
		if err := cfg.RequireTelegram(); err != nil {
			logger.Log.Fatalf("Configuration error: %v", err)
		}

		if err := geoip.Init(cfg.GeoIP.CountryPath); err != nil {
			logger.Log.Warnf("GeoIP disabled: %v", err)
		}
		defer geoip.Close()

		var database *gorm.DB
		if cfg.Database.Path != "" {
			database, err = db.Connect(cfg.Database.Path)
			if err != nil {
				logger.Log.Warnf("Usage stats disabled: %v", err)
				database = nil
			} else {
				if err := db.Migrate(database); err != nil {
					logger.Log.Warnf("Migration failed: %v", err)
				}
				defer db.Close(database)
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger.Log.Info("🚀 Starting v2link bot...")
		err = bot.Run(ctx, bot.Options{
			APIID:       cfg.Telegram.APIID,
			APIHash:     cfg.Telegram.APIHash,
			BotToken:    cfg.Telegram.BotToken,
			SessionFile: cfg.Telegram.SessionFile,
			Limiter:     ratelimit.New(cfg.Limits.MaxRequests, time.Duration(cfg.Limits.Window)),
			IdleTTL:     time.Duration(cfg.Limits.IdleTTL),
			MaxUsers:    cfg.Limits.MaxUsers,
			DB:          database,
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Log.Fatalf("Bot stopped with error: %v", err)
		}
		logger.Log.Info("👋 Bot stopped gracefully")
	},
}

func init() {
	rootCmd.AddCommand(botCmd)
}
