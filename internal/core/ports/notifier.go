package ports

import (
	"context"
)

// Notification is a mail request addressed to an intermediary or buyer.
type Notification struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// Notifier hands notifications to the delivery pipeline. The production
// implementation enqueues to RabbitMQ and a worker drains the queue into the
// mail provider; failures are logged and swallowed, notifications are never
// allowed to fail a business operation.
type Notifier interface {
	// Notify enqueues one notification for asynchronous delivery.
	Notify(ctx context.Context, notification Notification) error
}

// MailSender is the terminal sender behind the notification queue.
type MailSender interface {
	// Send delivers one mail through the provider.
	Send(ctx context.Context, notification Notification) error
}
