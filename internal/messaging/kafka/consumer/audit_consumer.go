package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/grehub24-dot/campusflow/internal/bootstrap"
	"github.com/grehub24-dot/campusflow/internal/events"
)

// ConsumeDomainEvents feeds the audit trail from the domain event stream.
// Malformed messages are committed and dropped; audit write failures leave the
// message uncommitted so it is retried.
func ConsumeDomainEvents(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.audit")
	log.Info("audit consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("audit consumer stopped")
				return
			}
			log.Error("fetch domain event failed", zap.Error(err))
			continue
		}

		entry, ok := auditEntryFor(msg)
		if !ok {
			log.Warn("unrecognized domain event, dropping",
				zap.String("topic", msg.Topic),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := auditLogger.Record(ctx, entry); err != nil {
			log.Error("record audit entry failed",
				zap.String("topic", msg.Topic),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit domain event failed", zap.Error(err))
			continue
		}

		log.Info("audit entry recorded",
			zap.String("topic", msg.Topic),
			zap.String("action", entry.Action),
		)
	}
}

func auditEntryFor(msg kafkago.Message) (bootstrap.AuditEntry, bool) {
	switch msg.Topic {
	case events.StudentAdmittedTopic:
		var event events.StudentAdmittedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return bootstrap.AuditEntry{}, false
		}
		return bootstrap.AuditEntry{
			Action:     event.EventType,
			EntityType: "student",
			EntityID:   event.StudentID,
			Detail:     event.AdmissionNumber,
			OccurredAt: event.OccurredAt,
		}, true
	case events.PayrollCommittedTopic:
		var event events.PayrollCommittedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return bootstrap.AuditEntry{}, false
		}
		return bootstrap.AuditEntry{
			Action:     event.EventType,
			EntityType: "payroll_run",
			EntityID:   event.PayrollRunID,
			Detail:     event.TotalAmount,
			OccurredAt: event.OccurredAt,
		}, true
	default:
		return bootstrap.AuditEntry{}, false
	}
}
