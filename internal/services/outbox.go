package services

import (
	"context"

	outboxevents "github.com/Kermitroid/outterspace2/internal/models/outbox_events"
	"github.com/Kermitroid/outterspace2/internal/repositories"

	"github.com/bionicotaku/lingo-utils/txmanager"
)

// OutboxEnqueuer 在业务事务内写入领域事件。
type OutboxEnqueuer interface {
	Enqueue(ctx context.Context, sess txmanager.Session, msg repositories.OutboxMessage) error
}

// eventWriter 由写入领域事件的服务内嵌，编码失败与写入失败都会回滚所在事务。
type eventWriter struct {
	outbox  OutboxEnqueuer
	metrics *outboxMetrics
}

func newEventWriter(outbox OutboxEnqueuer, component string) eventWriter {
	return eventWriter{outbox: outbox, metrics: newOutboxMetrics(component)}
}

func (w eventWriter) enqueueEvent(ctx context.Context, sess txmanager.Session, evt *outboxevents.DomainEvent) error {
	if evt == nil || w.outbox == nil {
		return nil
	}
	msg, err := buildOutboxMessage(ctx, evt)
	if err != nil {
		w.metrics.recordFailure(ctx, evt.Kind.String(), err)
		return err
	}
	if err := w.outbox.Enqueue(ctx, sess, msg); err != nil {
		w.metrics.recordFailure(ctx, evt.Kind.String(), err)
		return err
	}
	w.metrics.recordSuccess(ctx, evt.Kind.String(), evt.OccurredAt)
	return nil
}

func buildOutboxMessage(ctx context.Context, evt *outboxevents.DomainEvent) (repositories.OutboxMessage, error) {
	data, err := outboxevents.EncodePayload(evt)
	if err != nil {
		return repositories.OutboxMessage{}, err
	}
	return repositories.OutboxMessage{
		EventID:       evt.EventID,
		AggregateType: evt.AggregateType,
		AggregateID:   evt.AggregateID,
		EventType:     evt.Kind.String(),
		Payload:       data,
		Headers:       outboxevents.BuildAttributes(evt, outboxevents.SchemaVersionV1, outboxevents.TraceIDFromContext(ctx)),
		AvailableAt:   evt.OccurredAt,
	}, nil
}
