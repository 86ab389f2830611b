// Package server exposes the inbound webhook HTTP endpoint.
package server

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/pfrederiksen/plex-telegram-notify/internal/logging"
	"github.com/pfrederiksen/plex-telegram-notify/internal/plex"
	"github.com/pfrederiksen/plex-telegram-notify/internal/relay"
)

// Server routes inbound Plex webhook requests to the relay.
type Server struct {
	secret string
	relay  *relay.Relay
	router chi.Router
}

// New builds the webhook HTTP handler. When secret is non-empty only
// POSTs to /<secret> reach the relay; every other path is answered with
// 404 so the endpoint's existence is not revealed.
func New(secret string, rly *relay.Relay) *Server {
	s := &Server{secret: secret, relay: rly}

	r := chi.NewRouter()
	r.Get("/health", s.handleHealth)
	r.Post("/*", s.handleWebhook)
	s.router = r

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		// The offending path is deliberately kept out of the log line; a
		// near-miss could be a mistyped secret.
		logging.Warn().Str("remote", r.RemoteAddr).Msg("Rejecting webhook request to unknown path")
		http.NotFound(w, r)
		return
	}

	payload, thumb, err := plex.ParseRequest(r)
	if err != nil {
		// Acknowledge anyway: delivery is best-effort and Plex must not
		// retry on our account.
		logging.Warn().Err(err).Msg("Dropping malformed webhook payload")
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := s.relay.Handle(payload, thumb); err != nil {
		logging.Error().Err(err).Str("event", payload.Event).Msg("Notification delivery failed")
	}

	w.WriteHeader(http.StatusOK)
}

// authorized checks the request path against the configured secret. The
// query string is ignored; with no secret configured every path passes.
func (s *Server) authorized(r *http.Request) bool {
	if s.secret == "" {
		return true
	}
	return strings.Trim(r.URL.Path, "/") == s.secret
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": "plex-telegram-notify",
	})
}
