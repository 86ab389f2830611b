// Package notifier provides notification delivery for relayed Plex events.
//
// The notifier package defines the Notifier interface and two
// implementations: TelegramNotifier, which delivers through the Telegram
// Bot API, and DryRunNotifier, which logs what would be sent without
// contacting Telegram.
package notifier
