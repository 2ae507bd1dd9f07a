package notify

import (
	"context"
	"encoding/json"
	"time"

	"ordify/internal/common/logger"
	"ordify/internal/common/mq"
	"ordify/internal/domain"
)

// PublisherInterface emits order-lifecycle events. Publishing is
// fire-and-forget: core operations never fail because a notification
// could not be delivered.
type PublisherInterface interface {
	Publish(ev domain.Event)
}

// Nop drops every event. Used when RabbitMQ is not configured and in
// tests.
type Nop struct{}

func (Nop) Publish(domain.Event) {}

type AMQP struct {
	client *mq.Client
	lg     *logger.Logger
}

func NewAMQP(client *mq.Client, lg *logger.Logger) *AMQP {
	return &AMQP{client: client, lg: lg}
}

func (p *AMQP) Publish(ev domain.Event) {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(ev)
	if err != nil {
		p.lg.Error("event_marshal_failed", err, map[string]any{"type": ev.Type})
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := p.client.PublishPersistent(ctx, mq.NotificationsExchange, "", body); err != nil {
		p.lg.Error("event_publish_failed", err, map[string]any{"type": ev.Type})
		return
	}
	p.lg.Debug("event_published", map[string]any{"type": ev.Type, "order_id": ev.OrderID})
}
