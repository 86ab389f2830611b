package relay

import (
	"fmt"
	"testing"

	"github.com/pfrederiksen/plex-telegram-notify/internal/notifier"
	"github.com/pfrederiksen/plex-telegram-notify/internal/plex"
)

// recordingNotifier captures delivered messages for assertions.
type recordingNotifier struct {
	messages []notifier.Message
	err      error
}

func (n *recordingNotifier) Notify(msg notifier.Message) error {
	n.messages = append(n.messages, msg)
	return n.err
}

func moviePayload(event string) *plex.Payload {
	return &plex.Payload{
		Event:   event,
		Account: plex.Account{Title: "alice"},
		Player:  plex.Player{Title: "Chrome"},
		Metadata: &plex.Metadata{
			Type:  "movie",
			Title: "Inception",
		},
	}
}

func TestRelay_HandledEventTemplates(t *testing.T) {
	tests := []struct {
		event string
		want  string
	}{
		{plex.EventPlay, "alice started playing Inception on Chrome"},
		{plex.EventPause, "alice paused Inception on Chrome"},
		{plex.EventResume, "alice resumed Inception on Chrome"},
		{plex.EventStop, "alice stopped playing Inception on Chrome"},
		{plex.EventScrobble, "alice finished Inception on Chrome"},
	}

	for _, tt := range tests {
		t.Run(tt.event, func(t *testing.T) {
			n := &recordingNotifier{}
			r := New(n)

			if err := r.Handle(moviePayload(tt.event), nil); err != nil {
				t.Fatalf("Handle() unexpected error: %v", err)
			}

			if len(n.messages) != 1 {
				t.Fatalf("expected 1 notification, got %d", len(n.messages))
			}
			if got := n.messages[0].Text; got != tt.want {
				t.Errorf("message text = %q, want %q", got, tt.want)
			}
			if n.messages[0].Image != nil {
				t.Error("expected no image without a thumbnail")
			}
		})
	}
}

func TestRelay_IgnoresUnhandledEvents(t *testing.T) {
	for _, event := range []string{plex.EventRate, plex.EventLibraryNew, "library.on.deck", "device.new", "something.else"} {
		t.Run(event, func(t *testing.T) {
			n := &recordingNotifier{}
			r := New(n)

			if err := r.Handle(moviePayload(event), nil); err != nil {
				t.Fatalf("Handle() unexpected error: %v", err)
			}
			if len(n.messages) != 0 {
				t.Errorf("unhandled event %q should not be relayed, got %d notifications", event, len(n.messages))
			}
		})
	}
}

func TestRelay_DropsPayloadWithoutMetadata(t *testing.T) {
	n := &recordingNotifier{}
	r := New(n)

	p := moviePayload(plex.EventPlay)
	p.Metadata = nil

	if err := r.Handle(p, nil); err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}
	if len(n.messages) != 0 {
		t.Errorf("payload without metadata should be dropped, got %d notifications", len(n.messages))
	}
}

func TestRelay_AttachesThumbnail(t *testing.T) {
	n := &recordingNotifier{}
	r := New(n)

	thumb := &plex.Thumbnail{Data: []byte{0x01, 0x02}, ContentType: "image/png"}
	if err := r.Handle(moviePayload(plex.EventPlay), thumb); err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}

	if len(n.messages) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(n.messages))
	}
	img := n.messages[0].Image
	if img == nil {
		t.Fatal("expected image on message")
	}
	if img.ContentType != "image/png" {
		t.Errorf("image content type = %q, want %q", img.ContentType, "image/png")
	}
	if len(img.Data) != 2 {
		t.Errorf("image data length = %d, want 2", len(img.Data))
	}
}

func TestRelay_GuestAndUnknownPlayerFallbacks(t *testing.T) {
	n := &recordingNotifier{}
	r := New(n)

	p := &plex.Payload{
		Event:    plex.EventPlay,
		Metadata: &plex.Metadata{Type: "movie", Title: "Inception"},
	}
	if err := r.Handle(p, nil); err != nil {
		t.Fatalf("Handle() unexpected error: %v", err)
	}

	want := "A guest user started playing Inception on Unknown Player"
	if got := n.messages[0].Text; got != want {
		t.Errorf("message text = %q, want %q", got, want)
	}
}

func TestRelay_PropagatesDeliveryError(t *testing.T) {
	n := &recordingNotifier{err: fmt.Errorf("telegram down")}
	r := New(n)

	err := r.Handle(moviePayload(plex.EventPlay), nil)
	if err == nil {
		t.Fatal("Handle() expected delivery error, got nil")
	}
}

func TestHandledEvents(t *testing.T) {
	events := HandledEvents()
	want := []string{
		plex.EventPause,
		plex.EventPlay,
		plex.EventResume,
		plex.EventScrobble,
		plex.EventStop,
	}

	if len(events) != len(want) {
		t.Fatalf("HandledEvents() = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("HandledEvents()[%d] = %q, want %q", i, events[i], want[i])
		}
	}

	for _, e := range want {
		if !Handled(e) {
			t.Errorf("Handled(%q) = false, want true", e)
		}
	}
	if Handled(plex.EventRate) {
		t.Errorf("Handled(%q) = true, want false", plex.EventRate)
	}
}
