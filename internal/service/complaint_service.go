package service

import (
	"context"
	"io"
	"mime/multipart"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rose-villa/complaint-service/internal/config"
	"github.com/rose-villa/complaint-service/internal/domain"
	"github.com/rose-villa/complaint-service/internal/events"
	"github.com/rose-villa/complaint-service/internal/mail"
	"github.com/rose-villa/complaint-service/pkg/util/errorutil"
)

// ComplaintService runs the submission pipeline: validate, process the
// optional image, render the notification and relay it to the admin address.
type ComplaintService struct {
	cfg        config.Config
	sender     mail.Sender
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ComplaintDependencies bundles collaborators for the service.
type ComplaintDependencies struct {
	Sender     mail.Sender
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewComplaintService creates the service.
func NewComplaintService(cfg config.Config, deps ComplaintDependencies) *ComplaintService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComplaintService{
		cfg:        cfg,
		sender:     deps.Sender,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Submit relays one complaint to the administrative address and returns the
// provider message id. Every failure maps to a DomainError; at most one
// provider call is made and nothing is retried.
func (s *ComplaintService) Submit(ctx context.Context, sub domain.ComplaintSubmission, image *multipart.FileHeader) (string, error) {
	if !sub.Valid() {
		return "", errorutil.NewValidationFailed()
	}

	attachment, err := s.processImage(image)
	if err != nil {
		return "", err
	}
	sub.Attachment = attachment

	body, err := mail.RenderComplaintBody(s.cfg.Site.Name, sub)
	if err != nil {
		return "", errorutil.NewInternalError(err)
	}

	email := &mail.Email{
		From:    s.cfg.Mail.FromEmail,
		To:      []string{s.cfg.Mail.AdminEmail},
		Subject: mail.ComplaintSubject(s.cfg.Site.Name, sub.Floor, sub.Room),
		HTML:    body,
	}
	if sub.Attachment != nil {
		email.Attachments = []mail.Attachment{{
			Filename:    sub.Attachment.Filename,
			ContentType: sub.Attachment.MIMEType,
			Content:     sub.Attachment.Content,
		}}
	}

	emailID, err := s.sender.Send(ctx, email)
	if err != nil {
		s.logger.Error("provider send failed", zap.Error(err))
		return "", errorutil.NewDeliveryFailed(err)
	}

	s.publishSubmitted(ctx, sub, emailID)

	return emailID, nil
}

// processImage builds an ImageAttachment from the uploaded file part, if
// present and eligible. A disallowed extension yields no attachment and no
// error; an oversize or unreadable file fails the whole request.
func (s *ComplaintService) processImage(image *multipart.FileHeader) (*domain.ImageAttachment, error) {
	if image == nil || strings.TrimSpace(image.Filename) == "" {
		return nil, nil
	}

	ext, mimeType, ok := domain.ImageType(image.Filename, s.cfg.Upload.AllowedExtensions)
	if !ok {
		s.logger.Debug("ignoring upload with disallowed extension", zap.String("filename", image.Filename))
		return nil, nil
	}

	if image.Size > s.cfg.Upload.MaxBytes {
		return nil, errorutil.NewPayloadTooLarge(s.cfg.Upload.MaxBytes)
	}

	file, err := image.Open()
	if err != nil {
		return nil, errorutil.NewAttachmentProcessingFailed(err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, errorutil.NewAttachmentProcessingFailed(err)
	}

	return &domain.ImageAttachment{
		Filename:  domain.CanonicalImageName(ext),
		Extension: ext,
		MIMEType:  mimeType,
		SizeBytes: image.Size,
		Content:   content,
	}, nil
}

func (s *ComplaintService) publishSubmitted(ctx context.Context, sub domain.ComplaintSubmission, emailID string) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventComplaintSubmitted,
		Timestamp: time.Now().UTC(),
		Payload: events.ComplaintSubmittedPayload{
			Floor:          sub.Floor,
			Room:           sub.Room,
			SubmitterEmail: sub.Email,
			HasAttachment:  sub.Attachment != nil,
			EmailID:        emailID,
		},
	})
}
