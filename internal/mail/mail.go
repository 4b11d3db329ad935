package mail

import "context"

// Email is a fully-prepared message ready for the provider.
type Email struct {
	From        string
	To          []string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Attachment carries one file to be delivered with the email. Content holds
// the raw bytes; base64 wire encoding is the provider adapter's concern.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Sender delivers an email through a transactional provider and returns the
// provider's message id. Implementations must not retry.
type Sender interface {
	Send(ctx context.Context, email *Email) (string, error)
}
