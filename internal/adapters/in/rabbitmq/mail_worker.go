package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"cardmarket/internal/core/ports"
)

// MailWorker drains the notification queue into the mail provider. Each
// delivery is acknowledged only after the provider accepted it, so a crashed
// worker leaves unsent notifications in the queue.
type MailWorker struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	sender  ports.MailSender
}

// NewMailWorker connects to the broker and declares the notification queue.
func NewMailWorker(url, queue string, sender ports.MailSender) (*MailWorker, error) {
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

	return &MailWorker{conn: conn, channel: channel, queue: queue, sender: sender}, nil
}

// Run consumes notifications until the context is cancelled or the channel
// closes. Malformed messages are rejected without requeue; provider failures
// requeue the delivery for a later attempt.
func (w *MailWorker) Run(ctx context.Context) error {
	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("consume queue %q: %w", w.queue, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case delivery, ok := <-deliveries:
			if !ok {
				return nil
			}
			w.handle(ctx, delivery)
		}
	}
}

func (w *MailWorker) handle(ctx context.Context, delivery amqp.Delivery) {
	var notification ports.Notification
	if err := json.Unmarshal(delivery.Body, &notification); err != nil {
		slog.Warn("discarding malformed notification", "error", err)
		_ = delivery.Nack(false, false)
		return
	}

	if err := w.sender.Send(ctx, notification); err != nil {
		slog.Warn("mail provider rejected notification",
			"recipient", notification.Recipient, "error", err)
		_ = delivery.Nack(false, true)
		return
	}

	_ = delivery.Ack(false)
}

// Close releases the channel and the broker connection.
func (w *MailWorker) Close() error {
	if err := w.channel.Close(); err != nil {
		return err
	}
	return w.conn.Close()
}
