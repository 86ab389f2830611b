// Package relay maps Plex webhook events to notification messages.
//
// The mapping is a lookup table keyed by event type; each entry is a pure
// formatting function over the account, media title and player names.
// Event types absent from the table are dropped without a notification so
// the chat is not flooded by events nobody asked for.
package relay

import (
	"github.com/pfrederiksen/plex-telegram-notify/internal/logging"
	"github.com/pfrederiksen/plex-telegram-notify/internal/notifier"
	"github.com/pfrederiksen/plex-telegram-notify/internal/plex"
)

// Relay turns parsed webhook payloads into notifications and dispatches
// them through a Notifier.
type Relay struct {
	notifier notifier.Notifier
}

// New creates a relay dispatching to the given notifier.
func New(n notifier.Notifier) *Relay {
	return &Relay{notifier: n}
}

// Handle relays a single webhook payload. Unhandled event types and
// payloads without media metadata are dropped without error; only
// delivery failures are returned.
func (r *Relay) Handle(p *plex.Payload, thumb *plex.Thumbnail) error {
	tmpl, ok := templates[p.Event]
	if !ok {
		logging.Debug().Str("event", p.Event).Msg("Ignoring unhandled event type")
		return nil
	}

	if p.Metadata == nil {
		logging.Warn().Str("event", p.Event).Msg("Payload missing media metadata, dropping event")
		return nil
	}

	account := p.Account.DisplayName()
	title := p.Metadata.DisplayTitle()
	player := p.Player.DisplayName()

	msg := notifier.Message{
		Text: tmpl(account, title, player),
	}
	if thumb != nil {
		msg.Image = &notifier.Image{Data: thumb.Data, ContentType: thumb.ContentType}
	}

	logging.Info().
		Str("event", p.Event).
		Str("user", account).
		Str("content", title).
		Str("player", player).
		Msg("Relaying webhook event")

	return r.notifier.Notify(msg)
}
