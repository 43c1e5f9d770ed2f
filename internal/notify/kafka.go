package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"sentinews/internal/model"

	"github.com/segmentio/kafka-go"
)

// KafkaDispatcher publishes digest envelopes to a Kafka topic, keyed by
// contact so one subscriber's digests stay on one partition.
type KafkaDispatcher struct {
	writer *kafka.Writer
}

func NewKafkaDispatcher(broker string, topic string) *KafkaDispatcher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(broker),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireOne,
	}
	return &KafkaDispatcher{writer: writer}
}

func (d *KafkaDispatcher) Send(ctx context.Context, contact string, topic string, articles []model.ScoredArticle) error {
	envelope := digestEnvelope{
		Contact:  contact,
		Topic:    topic,
		Articles: toDigestArticles(articles),
	}

	data, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal digest: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(contact),
		Value: data,
	}

	if err := d.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("publish digest: %w", err)
	}

	return nil
}

func (d *KafkaDispatcher) Close() error {
	return d.writer.Close()
}
