package plex

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// maxBodyBytes caps how much of a webhook body is read. Plex thumbnails
// are small JPEGs; anything larger is not a legitimate webhook.
const maxBodyBytes = 16 << 20

// Thumbnail is an image attached to a webhook. A nil *Thumbnail means the
// request carried no image.
type Thumbnail struct {
	Data        []byte
	ContentType string
}

// ParseRequest extracts the webhook payload and optional thumbnail from an
// inbound request. It accepts multipart/form-data with a "payload" form
// field or a raw JSON body.
func ParseRequest(r *http.Request) (*Payload, *Thumbnail, error) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	if strings.HasPrefix(mediaType, "multipart/") {
		return parseMultipart(r)
	}

	p, err := parseJSONBody(r.Body)
	return p, nil, err
}

func parseJSONBody(body io.Reader) (*Payload, error) {
	raw, err := io.ReadAll(io.LimitReader(body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return parsePayload(raw)
}

func parseMultipart(r *http.Request) (*Payload, *Thumbnail, error) {
	if err := r.ParseMultipartForm(maxBodyBytes); err != nil {
		return nil, nil, fmt.Errorf("parsing multipart form: %w", err)
	}

	field := r.FormValue("payload")
	if field == "" {
		return nil, nil, fmt.Errorf("multipart body missing payload field")
	}

	p, err := parsePayload([]byte(field))
	if err != nil {
		return nil, nil, err
	}

	return p, firstImage(r.MultipartForm), nil
}

func parsePayload(raw []byte) (*Payload, error) {
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("parsing payload JSON: %w", err)
	}
	if p.Event == "" {
		return nil, fmt.Errorf("payload missing event field")
	}
	return &p, nil
}

// firstImage returns the first attached image file part, if any. Plex
// names the part "thumb" but the field name is not relied on; any file
// part with an image content type qualifies.
func firstImage(form *multipart.Form) *Thumbnail {
	if form == nil {
		return nil
	}

	for _, headers := range form.File {
		for _, fh := range headers {
			ct := fh.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "image/") {
				continue
			}

			f, err := fh.Open()
			if err != nil {
				continue
			}
			data, err := io.ReadAll(io.LimitReader(f, maxBodyBytes))
			f.Close()
			if err != nil || len(data) == 0 {
				continue
			}

			if ct == "" {
				ct = "image/jpeg"
			}
			return &Thumbnail{Data: data, ContentType: ct}
		}
	}

	return nil
}
