// Package cli implements the command-line interface for plex-telegram-notify.
//
// The cli package provides the Cobra-based entrypoint. There are no flags
// beyond --help; configuration is entirely environment-driven. The command
// loads configuration, initializes logging, wires the Telegram (or dry-run)
// notifier into the webhook relay, and serves HTTP until interrupted.
package cli
