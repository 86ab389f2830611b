package notifier

import (
	"github.com/pfrederiksen/plex-telegram-notify/internal/logging"
)

// DryRunNotifier logs what would be sent without contacting Telegram.
type DryRunNotifier struct{}

// NewDryRunNotifier creates a new dry-run notifier.
func NewDryRunNotifier() *DryRunNotifier {
	return &DryRunNotifier{}
}

// Notify logs the message that would have been delivered.
func (n *DryRunNotifier) Notify(msg Message) error {
	evt := logging.Info().Str("text", msg.Text)
	if msg.Image != nil {
		evt = evt.Int("image_bytes", len(msg.Image.Data)).Str("image_type", msg.Image.ContentType)
	}
	evt.Msg("Dry run, skipping Telegram delivery")
	return nil
}
