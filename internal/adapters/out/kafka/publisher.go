package kafka

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"cardmarket/internal/core/ports"
)

var _ ports.EventPublisher = &Publisher{}

// Publisher emits shipment lifecycle events to a Kafka topic. Messages are
// keyed by shipment ID so consumers observe transitions of one shipment in
// order.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a Publisher writing to the given broker and topic.
func NewPublisher(brokerAddr, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokerAddr),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *Publisher) PublishShipmentStatusChanged(ctx context.Context, event ports.ShipmentStatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ShipmentID),
		Value: payload,
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
