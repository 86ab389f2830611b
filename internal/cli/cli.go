package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/pfrederiksen/plex-telegram-notify/internal/config"
	"github.com/pfrederiksen/plex-telegram-notify/internal/logging"
	"github.com/pfrederiksen/plex-telegram-notify/internal/notifier"
	"github.com/pfrederiksen/plex-telegram-notify/internal/relay"
	"github.com/pfrederiksen/plex-telegram-notify/internal/server"
	"github.com/pfrederiksen/plex-telegram-notify/internal/telegram"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

const (
	readTimeout     = 15 * time.Second
	writeTimeout    = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plex-telegram-notify",
		Short: "Relay Plex webhook events to a Telegram chat",
		Long: `Receives Plex Media Server webhook callbacks and forwards a human-readable
notification (with optional thumbnail) to a Telegram chat.

All behavior is environment-driven:
  SERVER_HOST     listen address       (default 0.0.0.0)
  SERVER_PORT     listen port          (default 9000)
  LOG_LEVEL       minimum log level    (default WARNING)
  DRYRUN          log instead of send  (default false)
  WEBHOOK_SECRET  path secret          (optional)
  BOT_TOKEN       Telegram bot token   (required)
  CHAT_ID         Telegram chat ID     (required)`,
		SilenceUsage: true,
		RunE:         runServe,
	}
}

// runServe is the main command logic
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logging.Init(logging.Config{Level: cfg.LogLevel})

	client, err := telegram.NewClient(cfg.BotToken, cfg.ChatID)
	if err != nil {
		return fmt.Errorf("initializing Telegram client: %w", err)
	}

	var n notifier.Notifier = notifier.NewTelegramNotifier(client)
	if cfg.DryRun {
		n = notifier.NewDryRunNotifier()
	}

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.New(cfg.WebhookSecret, relay.New(n)),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().
			Str("addr", cfg.Addr()).
			Str("log_level", cfg.LogLevel).
			Bool("dry_run", cfg.DryRun).
			Bool("webhook_auth", cfg.WebhookSecret != "").
			Strs("handled_events", relay.HandledEvents()).
			Msg("Starting Plex webhook server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
		logging.Info().Msg("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
	}

	logging.Info().Msg("Server stopped")
	return nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
