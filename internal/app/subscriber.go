package app

import (
	"context"
	"encoding/json"
	"errors"

	"ordify/internal/common/config"
	"ordify/internal/common/logger"
	"ordify/internal/common/mq"
	"ordify/internal/domain"
)

// RunSubscriber drains the notifications queue and logs each
// order-lifecycle event. A display board or pager integration would
// hang off this loop.
func RunSubscriber(ctx context.Context, cfg *config.Config) error {
	lg := logger.New("notification-subscriber")
	if !cfg.RabbitMQ.Enabled() {
		return errors.New("rabbitmq is not configured")
	}

	client, err := mq.Dial(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		return err
	}
	defer client.Close()
	if err := client.DeclareAll(); err != nil {
		return err
	}

	msgs, err := client.Consume(mq.NotificationsQueue, "notificator", 1)
	if err != nil {
		return err
	}
	lg.Info("subscriber_started", map[string]any{"queue": mq.NotificationsQueue})

	for {
		select {
		case <-ctx.Done():
			lg.Info("graceful_shutdown", nil)
			return nil
		case d, ok := <-msgs:
			if !ok {
				return errors.New("notifications channel closed")
			}
			var ev domain.Event
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				lg.Error("event_decode_failed", err, nil)
				_ = d.Nack(false, false)
				continue
			}
			lg.Info("notification_received", map[string]any{
				"type":     ev.Type,
				"order_id": ev.OrderID,
				"table":    ev.TableNumber,
				"station":  ev.Station,
			})
			_ = d.Ack(false)
		}
	}
}
