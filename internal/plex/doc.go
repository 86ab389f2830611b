// Package plex models Plex Media Server webhook payloads.
//
// Plex posts webhooks as multipart/form-data with a "payload" form field
// holding the JSON event descriptor and, for some events, an attached
// thumbnail image. Some clients post the JSON descriptor directly as the
// request body instead; both forms are supported.
package plex
