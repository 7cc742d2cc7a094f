// Package kafka publishes workflow notifications to a Kafka topic.
// Notifications are fire-and-forget: a committed transition never fails
// because a broker was unreachable, so publish errors are logged and
// swallowed here.
package kafka

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"marketplace/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Notifier implements ports.Notifier on top of a kafka-go writer.
// Messages are keyed by recipient so one recipient's notifications stay
// ordered within a partition.
type Notifier struct {
	writer *kafka.Writer
	logger *slog.Logger
}

// NewNotifier creates a notifier publishing to the given topic.
// brokersCSV is a comma-separated broker list.
func NewNotifier(brokersCSV, topic string, logger *slog.Logger) *Notifier {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}

	return &Notifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
		logger: logger.With("component", "kafka-notifier"),
	}
}

type message struct {
	Recipient string            `json:"recipient"`
	Event     string            `json:"event"`
	Payload   map[string]string `json:"payload,omitempty"`
	SentAt    time.Time         `json:"sent_at"`
}

// Notify publishes the notification. Failures are logged, never returned.
func (n *Notifier) Notify(ctx context.Context, notification ports.Notification) {
	data, err := json.Marshal(message{
		Recipient: notification.Recipient.String(),
		Event:     notification.Event,
		Payload:   notification.Payload,
		SentAt:    time.Now().UTC(),
	})
	if err != nil {
		n.logger.Error("marshal notification", "event", notification.Event, "error", err)
		return
	}

	err = n.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(notification.Recipient.String()),
		Value: data,
		Time:  time.Now().UTC(),
	})
	if err != nil {
		n.logger.Error("publish notification",
			"event", notification.Event,
			"recipient", notification.Recipient.String(),
			"error", err,
		)
	}
}

// Close flushes and closes the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
