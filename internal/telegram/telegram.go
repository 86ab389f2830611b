// Package telegram provides a minimal Telegram Bot API client for sending
// notifications.
//
// The package supports the sendMessage and sendPhoto methods using plain
// HTTP requests. Authentication requires a bot token (from @BotFather) and
// a chat ID.
package telegram

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"github.com/goccy/go-json"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	timeout        = 10 * time.Second

	// Telegram API limits on outbound text.
	maxMessageLen = 4096
	maxCaptionLen = 1024
)

// Client is a Telegram Bot API client bound to a single chat.
type Client struct {
	botToken   string
	chatID     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Telegram client.
func NewClient(botToken, chatID string) (*Client, error) {
	if botToken == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if chatID == "" {
		return nil, fmt.Errorf("chat ID is required")
	}

	return &Client{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  defaultBaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// SetBaseURL overrides the Telegram API base URL. Intended for tests.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SendMessage sends a text-only message to the configured chat.
func (c *Client) SendMessage(text string) error {
	if text == "" {
		return fmt.Errorf("message text is required")
	}

	payload := map[string]interface{}{
		"chat_id": c.chatID,
		"text":    truncate(text, maxMessageLen),
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.methodURL("sendMessage"), bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// SendPhoto sends a photo with a caption to the configured chat. The photo
// is uploaded as a multipart file part; contentType defaults to image/jpeg
// when empty.
func (c *Client) SendPhoto(caption string, photo []byte, contentType string) error {
	if len(photo) == 0 {
		return fmt.Errorf("photo data is required")
	}
	if contentType == "" {
		contentType = "image/jpeg"
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	if err := w.WriteField("chat_id", c.chatID); err != nil {
		return fmt.Errorf("writing chat_id field: %w", err)
	}
	if caption != "" {
		if err := w.WriteField("caption", truncate(caption, maxCaptionLen)); err != nil {
			return fmt.Errorf("writing caption field: %w", err)
		}
	}

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="photo"; filename="thumb.jpg"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	if err != nil {
		return fmt.Errorf("creating photo part: %w", err)
	}
	if _, err := part.Write(photo); err != nil {
		return fmt.Errorf("writing photo data: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.methodURL("sendPhoto"), &buf)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req)
}

func (c *Client) methodURL(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.botToken, method)
}

// do executes the request and decodes the standard Telegram response
// envelope, surfacing API-level failures as errors.
func (c *Client) do(req *http.Request) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("telegram API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result struct {
		OK          bool   `json:"ok"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	return nil
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
