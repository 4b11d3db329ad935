package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/rose-villa/complaint-service/internal/events"
)

// StartAuditWorker subscribes an audit log listener for submitted complaints.
func StartAuditWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventComplaintSubmitted, func(ctx context.Context, event events.Event) error {
		payload, ok := event.Payload.(events.ComplaintSubmittedPayload)
		if !ok {
			return nil
		}
		logger.Info("complaint submitted",
			zap.String("event_id", event.ID),
			zap.String("floor", payload.Floor),
			zap.String("room", payload.Room),
			zap.String("submitter_email", payload.SubmitterEmail),
			zap.Bool("has_attachment", payload.HasAttachment),
			zap.String("email_id", payload.EmailID))
		return nil
	})
}
