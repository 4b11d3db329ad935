package resendmail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v3"

	"github.com/rose-villa/complaint-service/internal/mail"
)

// Sender implements mail.Sender using the Resend API.
type Sender struct {
	client *resend.Client
}

// New creates a Resend-backed sender.
func New(apiKey string) *Sender {
	return &Sender{client: resend.NewClient(apiKey)}
}

// Send delivers the email through Resend and returns the provider message id.
// The SDK base64-encodes attachment bytes for the wire payload.
func (s *Sender) Send(ctx context.Context, email *mail.Email) (string, error) {
	req := &resend.SendEmailRequest{
		From:    email.From,
		To:      email.To,
		Subject: email.Subject,
		Html:    email.HTML,
	}

	for _, attachment := range email.Attachments {
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename:    attachment.Filename,
			Content:     attachment.Content,
			ContentType: attachment.ContentType,
		})
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}
