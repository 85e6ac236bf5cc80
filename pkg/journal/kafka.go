package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/Goden-Gun/service-lib/pkg/kafka"
)

// Record headers set by KafkaSink.
const (
	HeaderCorrelationID = "x-correlation-id"
	HeaderFaultCode     = "x-fault-code"
)

// Publisher is satisfied by *kafka.Manager.
type Publisher interface {
	Publish(ctx context.Context, topic string, key, value []byte, extra ...kafka.Header) error
}

// KafkaSink publishes records as JSON, keyed by correlation id so all faults
// of one transaction land on the same partition.
type KafkaSink struct {
	pub   Publisher
	topic string
}

// NewKafkaSink publishes to topic; an empty topic falls back to the
// manager's configured one.
func NewKafkaSink(pub Publisher, topic string) *KafkaSink {
	return &KafkaSink{pub: pub, topic: topic}
}

func (s *KafkaSink) Write(ctx context.Context, r Record) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("journal: marshal record %s: %w", r.ID, err)
	}
	headers := []kafka.Header{{Key: HeaderFaultCode, Value: strconv.Itoa(int(r.Fault.Code()))}}
	if id := r.CorrelationID(); id != "" {
		headers = append(headers, kafka.Header{Key: HeaderCorrelationID, Value: id})
	}
	if err := s.pub.Publish(ctx, s.topic, []byte(r.key()), payload, headers...); err != nil {
		return fmt.Errorf("journal: publish record %s: %w", r.ID, err)
	}
	return nil
}
