package plex

import "strings"

// Webhook event types emitted by Plex Media Server.
const (
	EventPlay       = "media.play"
	EventPause      = "media.pause"
	EventResume     = "media.resume"
	EventStop       = "media.stop"
	EventScrobble   = "media.scrobble"
	EventRate       = "media.rate"
	EventLibraryNew = "library.new"
)

// Payload is the JSON event descriptor carried by a Plex webhook.
type Payload struct {
	Event    string    `json:"event"`
	User     bool      `json:"user"`
	Owner    bool      `json:"owner"`
	Account  Account   `json:"Account"`
	Server   Server    `json:"Server"`
	Player   Player    `json:"Player"`
	Metadata *Metadata `json:"Metadata,omitempty"`
}

// Account identifies the Plex user that triggered the event.
type Account struct {
	ID    int    `json:"id"`
	Thumb string `json:"thumb"`
	Title string `json:"title"`
}

// DisplayName returns the account title, or a guest placeholder when Plex
// reports an empty title (shared and guest users).
func (a Account) DisplayName() string {
	if t := strings.TrimSpace(a.Title); t != "" {
		return t
	}
	return "A guest user"
}

// Server identifies the Plex server that sent the webhook.
type Server struct {
	Title string `json:"title"`
	UUID  string `json:"uuid"`
}

// Player identifies the client device involved in a playback event.
type Player struct {
	Local         bool   `json:"local"`
	PublicAddress string `json:"publicAddress"`
	Title         string `json:"title"`
	UUID          string `json:"uuid"`
}

// DisplayName returns the player title, or a placeholder when empty.
func (p Player) DisplayName() string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	return "Unknown Player"
}

// Metadata describes the media item a playback event refers to. It is
// absent for events that carry no media item.
type Metadata struct {
	LibrarySectionType  string `json:"librarySectionType"`
	LibrarySectionTitle string `json:"librarySectionTitle"`
	RatingKey           string `json:"ratingKey"`
	Key                 string `json:"key"`
	GUID                string `json:"guid"`
	Type                string `json:"type"`
	Title               string `json:"title"`
	GrandparentTitle    string `json:"grandparentTitle"`
	ParentTitle         string `json:"parentTitle"`
	Summary             string `json:"summary"`
	Index               int    `json:"index"`
	ParentIndex         int    `json:"parentIndex"`
	Year                int    `json:"year"`
	Thumb               string `json:"thumb"`
	Art                 string `json:"art"`
	AddedAt             int64  `json:"addedAt"`
	UpdatedAt           int64  `json:"updatedAt"`
}
