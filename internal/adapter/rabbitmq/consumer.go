package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/adapter/logger"
	"github.com/CSCE331-Fall2024/project-3-team-2c-sub000/internal/interfaces"
)

type consumer struct {
	conn     Connection
	prefetch int
	logger   logger.Logger
}

func NewConsumer(conn Connection, prefetch int, lgr logger.Logger) interfaces.MessageConsumer {
	return &consumer{conn: conn, prefetch: prefetch, logger: lgr}
}

// ConsumeOrderPlaced delivers order-placed events to the handler, redialing
// the channel after transient failures until the context is cancelled.
func (c *consumer) ConsumeOrderPlaced(ctx context.Context, handler interfaces.OrderPlacedHandler) error {
	for {
		err := c.consumeWithReconnect(ctx, handler)

		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(5 * time.Second):
		}
	}
}

func (c *consumer) consumeWithReconnect(ctx context.Context, handler interfaces.OrderPlacedHandler) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	closeChan := ch.NotifyClose()

	if err := ch.Qos(c.prefetch, 0, false); err != nil {
		return fmt.Errorf("failed to set QoS: %w", err)
	}

	if err := setupOrdersInfrastructure(ch); err != nil {
		return err
	}

	msgs, err := ch.Consume(kitchenQueue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case err := <-closeChan:
			if err != nil {
				return fmt.Errorf("channel closed: %w", err)
			}
			return fmt.Errorf("channel closed gracefully")

		case msg, ok := <-msgs:
			if !ok {
				return fmt.Errorf("messages channel closed")
			}

			if err := handler(ctx, msg.Body); err != nil {
				// Unparseable or failing messages go to the DLQ. A failed
				// Nack leaves the message unrouted, so it is logged.
				if nackErr := msg.Nack(false, false); nackErr != nil {
					c.logger.Error("nack_failed", "Failed to reject message", "", map[string]interface{}{
						"delivery_tag": msg.DeliveryTag,
					}, nackErr)
				}
			} else {
				if ackErr := msg.Ack(false); ackErr != nil {
					c.logger.Error("ack_failed", "Failed to acknowledge message", "", map[string]interface{}{
						"delivery_tag": msg.DeliveryTag,
					}, ackErr)
				}
			}
		}
	}
}

func setupOrdersInfrastructure(ch Channel) error {
	if err := ch.ExchangeDeclare(ordersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare orders exchange: %w", err)
	}

	dlqExchange := "orders_dlq"
	if err := ch.ExchangeDeclare(dlqExchange, "direct", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare DLQ exchange: %w", err)
	}

	dlqQueue := kitchenQueue + "_dlq"
	if _, err := ch.QueueDeclare(dlqQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare DLQ: %w", err)
	}
	if err := ch.QueueBind(dlqQueue, "#", dlqExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind DLQ: %w", err)
	}

	args := map[string]interface{}{
		"x-dead-letter-exchange": dlqExchange,
	}
	q, err := ch.QueueDeclare(kitchenQueue, true, false, false, false, args)
	if err != nil {
		return fmt.Errorf("failed to declare kitchen display queue: %w", err)
	}

	if err := ch.QueueBind(q.Name, "kitchen.#", ordersExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind kitchen display queue: %w", err)
	}

	return nil
}
