// Package kafka wraps the franz-go client used to relay audit events.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

// Producer publishes records synchronously.
type Producer struct {
	client *kgo.Client
}

// NewProducer connects to the seed brokers and pings them. Returns nil when
// no brokers are configured.
func NewProducer(ctx context.Context, brokers []string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}
	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.ProducerLinger(5*time.Millisecond),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	if err := client.Ping(ctx); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping kafka: %w", err)
	}
	return &Producer{client: client}, nil
}

// Publish writes one record and waits for the broker ack.
func (p *Producer) Publish(ctx context.Context, topic string, key, value []byte) error {
	record := &kgo.Record{Topic: topic, Key: key, Value: value}
	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", topic, err)
	}
	return nil
}

// EnsureTopic creates the topic when missing. An existing topic is not an
// error.
func (p *Producer) EnsureTopic(ctx context.Context, topic string, partitions int32) error {
	if partitions <= 0 {
		partitions = 1
	}
	adm := kadm.NewClient(p.client)
	resp, err := adm.CreateTopics(ctx, partitions, -1, nil, topic)
	if err != nil {
		return fmt.Errorf("create topic %s: %w", topic, err)
	}
	for _, r := range resp {
		if r.Err != nil && !errors.Is(r.Err, kerr.TopicAlreadyExists) {
			return fmt.Errorf("create topic %s: %w", r.Topic, r.Err)
		}
	}
	return nil
}

func (p *Producer) Close() {
	p.client.Close()
}
