package relay

import (
	"fmt"
	"sort"

	"github.com/pfrederiksen/plex-telegram-notify/internal/plex"
)

// Template renders notification text for one event type.
type Template func(account, title, player string) string

// templates maps each handled Plex event type to its message template.
// Event types missing from this table are never relayed.
var templates = map[string]Template{
	plex.EventPlay: func(account, title, player string) string {
		return fmt.Sprintf("%s started playing %s on %s", account, title, player)
	},
	plex.EventPause: func(account, title, player string) string {
		return fmt.Sprintf("%s paused %s on %s", account, title, player)
	},
	plex.EventResume: func(account, title, player string) string {
		return fmt.Sprintf("%s resumed %s on %s", account, title, player)
	},
	plex.EventStop: func(account, title, player string) string {
		return fmt.Sprintf("%s stopped playing %s on %s", account, title, player)
	},
	plex.EventScrobble: func(account, title, player string) string {
		return fmt.Sprintf("%s finished %s on %s", account, title, player)
	},
}

// Handled reports whether the event type is relayed.
func Handled(event string) bool {
	_, ok := templates[event]
	return ok
}

// HandledEvents returns the relayed event types in sorted order.
func HandledEvents() []string {
	events := make([]string, 0, len(templates))
	for e := range templates {
		events = append(events, e)
	}
	sort.Strings(events)
	return events
}
