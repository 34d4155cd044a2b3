// ====================================
// File: cmd/bot/main.go
// ====================================
package main

import (
	"context"
	"flag"

	"go.uber.org/zap"

	"github.com/rmagomedov/tron-exchange-bot/internal/bot"
	"github.com/rmagomedov/tron-exchange-bot/internal/config"
	"github.com/rmagomedov/tron-exchange-bot/internal/exchange"
	"github.com/rmagomedov/tron-exchange-bot/internal/logger"
	"github.com/rmagomedov/tron-exchange-bot/internal/telegram"
	"github.com/rmagomedov/tron-exchange-bot/internal/tron"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to configuration file")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Bootstrap logger for startup errors only; the real logger comes
	// from the configuration.
	boot, _ := zap.NewDevelopment()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		boot.Fatal("Failed to load configuration", zap.Error(err))
	}

	log, err := logger.New(cfg.DebugLogging, cfg.LogFile)
	if err != nil {
		boot.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer log.Sync()

	log.Info("Starting exchange bot")

	signer, err := tron.NewSigner(cfg.PrivateKey)
	if err != nil {
		log.Fatal("Failed to load signing key", zap.Error(err))
	}

	chain := tron.NewClient(cfg.FullNodeURL, signer, log,
		tron.WithFeeLimit(cfg.FeeLimitSun),
		tron.WithConfirmTimeout(cfg.ConfirmTimeout),
		tron.WithPollInterval(cfg.PollInterval))

	settings := exchange.NewSettings(cfg.ConversionRate, cfg.DecimalLimit, cfg.MaxTRXPerSwap)
	swapper := exchange.NewSwapper(&exchange.SwapperConfig{
		Chain:        chain,
		Settings:     settings,
		TokenAddress: cfg.USDTContract,
		PayoutFrom:   cfg.PayoutSource,
		PayoutTo:     cfg.PayoutDestination,
		Logger:       log,
	})
	dispatcher := bot.NewDispatcher(&bot.DispatcherConfig{
		Settings:          settings,
		Swapper:           swapper,
		AdminID:           cfg.AdminID,
		PayoutDestination: cfg.PayoutDestination,
		Logger:            log,
	})

	messenger, err := telegram.New(cfg.TelegramToken, log)
	if err != nil {
		log.Fatal("Failed to connect to Telegram", zap.Error(err))
	}

	runner := bot.NewRunner(messenger, dispatcher, log)
	if err := runner.Run(ctx); err != nil {
		log.Fatal("Bot execution error", zap.Error(err))
	}
}
