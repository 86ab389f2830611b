package notifier

import (
	"github.com/pfrederiksen/plex-telegram-notify/internal/logging"
	"github.com/pfrederiksen/plex-telegram-notify/internal/telegram"
)

// TelegramNotifier delivers messages through the Telegram Bot API.
type TelegramNotifier struct {
	client *telegram.Client
}

// NewTelegramNotifier creates a notifier backed by the given client.
func NewTelegramNotifier(client *telegram.Client) *TelegramNotifier {
	return &TelegramNotifier{client: client}
}

// Notify sends the message via sendPhoto when an image is attached,
// falling back to a text-only sendMessage if the photo upload fails.
func (n *TelegramNotifier) Notify(msg Message) error {
	if msg.Image != nil {
		err := n.client.SendPhoto(msg.Text, msg.Image.Data, msg.Image.ContentType)
		if err == nil {
			return nil
		}
		logging.Warn().Err(err).Msg("Photo send failed, falling back to text-only message")
	}

	return n.client.SendMessage(msg.Text)
}
