package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"

	"cardmarket/internal/core/ports"
)

var _ ports.Notifier = &QueueNotifier{}

// QueueNotifier enqueues notifications to a durable RabbitMQ queue. A worker
// drains the queue into the mail provider, so callers return as soon as the
// broker accepted the message.
type QueueNotifier struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewQueueNotifier connects to the broker and declares the notification queue.
func NewQueueNotifier(url, queue string) (*QueueNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare queue %q: %w", queue, err)
	}

	return &QueueNotifier{conn: conn, channel: channel, queue: queue}, nil
}

func (n *QueueNotifier) Notify(ctx context.Context, notification ports.Notification) error {
	body, err := json.Marshal(notification)
	if err != nil {
		return err
	}

	return n.channel.PublishWithContext(ctx,
		"",      // default exchange
		n.queue, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
}

// Close releases the channel and the broker connection.
func (n *QueueNotifier) Close() error {
	if err := n.channel.Close(); err != nil {
		return err
	}
	return n.conn.Close()
}
