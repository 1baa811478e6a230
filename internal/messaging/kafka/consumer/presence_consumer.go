package consumer

import (
	"context"
	"encoding/json"

	"github.com/ahmedalmoraly/clockin-system/internal/events"
	"github.com/ahmedalmoraly/clockin-system/internal/presence"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeTimeEntryLifecycle projects clock events into the presence view.
// Unknown event types are committed and skipped so the topic can grow.
func ConsumeTimeEntryLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	presenceService presence.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.time_entry_lifecycle")
	log.Info("time entry lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("time entry lifecycle consumer stopped")
				return
			}
			log.Error("fetch time entry lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.TimeEntryClockedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode time entry event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		switch event.EventType {
		case events.EventTypeClockIn:
			err = presenceService.MarkIn(ctx, event)
		case events.EventTypeClockOut:
			err = presenceService.MarkOut(ctx, event)
		default:
			log.Warn("skipping unknown event type", zap.String("event_type", event.EventType))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err != nil {
			log.Error("project time entry event failed",
				zap.String("entry_id", event.EntryID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit time entry message failed", zap.Error(err))
			continue
		}

		log.Info("presence updated from clock event",
			zap.String("employee_id", event.EmployeeID),
			zap.String("event_type", event.EventType),
		)
	}
}
