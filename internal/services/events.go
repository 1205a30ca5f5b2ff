package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/pawpals-api/internal/logger"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PublishTimeout bounds a single Kafka write.
const PublishTimeout = 3 * time.Second

// CommitHook defers fn until the unit of work carried by ctx has committed.
type CommitHook func(ctx context.Context, fn func(ctx context.Context))

func runNow(ctx context.Context, fn func(ctx context.Context)) {
	fn(ctx)
}

// publish sends v as a JSON message keyed by key. Failures are logged and never returned:
// the database change has already been made. The write outlives a cancelled request
// but is bounded by PublishTimeout.
func publish(ctx context.Context, w KafkaWriter, key string, v any) {
	log := logger.FromContext(ctx)
	if w == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "key", key)
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Errorw("Failed to marshal message for Kafka", "key", key, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PublishTimeout)
	defer cancel()

	if err := w.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish message to Kafka", "key", key, "error", err)
	} else {
		log.Infow("Message published to Kafka", "key", key)
	}
}
