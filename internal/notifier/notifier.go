package notifier

// Image is a thumbnail attached to a notification.
type Image struct {
	Data        []byte
	ContentType string
}

// Message is a single outbound notification.
type Message struct {
	Text  string
	Image *Image // nil when the webhook carried no thumbnail
}

// Notifier delivers notification messages.
type Notifier interface {
	// Notify delivers the given message.
	Notify(msg Message) error
}
