package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rose-villa/complaint-service/internal/events"
)

func TestAuditWorker_LogsSubmittedComplaint(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	StartAuditWorker(dispatcher, zap.New(core))

	err := dispatcher.Publish(context.Background(), events.Event{
		ID:        "evt-9",
		Type:      events.EventComplaintSubmitted,
		Timestamp: time.Now().UTC(),
		Payload: events.ComplaintSubmittedPayload{
			Floor:          "3",
			Room:           "12",
			SubmitterEmail: "a@x.com",
			HasAttachment:  true,
			EmailID:        "re-123",
		},
	})
	require.NoError(t, err)

	entries := logs.FilterMessage("complaint submitted").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, "evt-9", fields["event_id"])
	require.Equal(t, "3", fields["floor"])
	require.Equal(t, "12", fields["room"])
	require.Equal(t, "a@x.com", fields["submitter_email"])
	require.Equal(t, true, fields["has_attachment"])
	require.Equal(t, "re-123", fields["email_id"])
}

func TestAuditWorker_IgnoresForeignPayloads(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	dispatcher := events.NewInMemoryDispatcher()
	StartAuditWorker(dispatcher, zap.New(core))

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventComplaintSubmitted,
		Payload: "not a complaint payload",
	})
	require.NoError(t, err)
	require.Empty(t, logs.All())
}
