package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/IBM/sarama"
	"github.com/xdg-go/scram"
	"go.opentelemetry.io/otel"
)

// Config defines Kafka connection and producer defaults.
//
// It is infrastructure-only: each publisher passes its own topic and Topic is
// the fallback.
type Config struct {
	Brokers       []string `yaml:"brokers" mapstructure:"brokers"`
	Topic         string   `yaml:"topic" mapstructure:"topic"`
	ClientID      string   `yaml:"client_id" mapstructure:"client_id"`
	Username      string   `yaml:"username" mapstructure:"username"`
	Password      string   `yaml:"password" mapstructure:"password"`
	SASLMechanism string   `yaml:"sasl_mechanism" mapstructure:"sasl_mechanism"`
	TLSEnabled    bool     `yaml:"tls_enabled" mapstructure:"tls_enabled"`

	// RequiredAcks supports: "none" | "one" | "all" (default: all).
	RequiredAcks string `yaml:"required_acks" mapstructure:"required_acks"`
	// MaxAttempts controls producer retry max attempts (default: 3).
	MaxAttempts int `yaml:"max_attempts" mapstructure:"max_attempts"`
}

var (
	ErrNoBrokers  = errors.New("kafka brokers empty")
	ErrNilManager = errors.New("kafka manager nil")
	ErrNoTopic    = errors.New("kafka topic empty")
)

// PublishObserver is an optional hook to observe publish latency and errors.
//
// It is metrics-backend agnostic so each service can map it to its own
// metrics and labels.
type PublishObserver interface {
	ObservePublish(topic string, duration time.Duration, err error)
}

// Header is an extra record header attached by Publish.
type Header struct {
	Key   string
	Value string
}

// Manager owns a shared Kafka sync producer.
type Manager struct {
	cfg      Config
	producer sarama.SyncProducer

	observerMu      sync.RWMutex
	publishObserver PublishObserver

	closeOnce sync.Once
}

// kafkaHeadersCarrier implements propagation.TextMapCarrier for Kafka headers.
type kafkaHeadersCarrier []sarama.RecordHeader

func (c *kafkaHeadersCarrier) Get(key string) string {
	for _, h := range *c {
		if string(h.Key) == key {
			return string(h.Value)
		}
	}
	return ""
}

func (c *kafkaHeadersCarrier) Set(key, value string) {
	*c = append(*c, sarama.RecordHeader{
		Key:   []byte(key),
		Value: []byte(value),
	})
}

func (c *kafkaHeadersCarrier) Keys() []string {
	keys := make([]string, 0, len(*c))
	for _, h := range *c {
		keys = append(keys, string(h.Key))
	}
	return keys
}

// NewManager builds a Kafka manager using the provided config.
func NewManager(cfg Config) (*Manager, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	producer, err := sarama.NewSyncProducer(cfg.Brokers, SaramaConfig(cfg))
	if err != nil {
		return nil, err
	}
	return NewManagerWithProducer(cfg, producer), nil
}

// NewManagerWithProducer wraps an existing producer, e.g. a sarama/mocks producer in tests.
func NewManagerWithProducer(cfg Config, producer sarama.SyncProducer) *Manager {
	return &Manager{cfg: cfg, producer: producer}
}

// SaramaConfig translates cfg into a producer config.
func SaramaConfig(cfg Config) *sarama.Config {
	base := sarama.NewConfig()
	base.Version = sarama.V2_1_0_0
	if cfg.ClientID != "" {
		base.ClientID = cfg.ClientID
	}

	base.Producer.Return.Successes = true
	base.Producer.Retry.Max = max(cfg.MaxAttempts, 3)
	base.Producer.RequiredAcks = parseRequiredAcks(cfg.RequiredAcks)
	base.Producer.Idempotent = false

	if cfg.TLSEnabled {
		base.Net.TLS.Enable = true
		base.Net.TLS.Config = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	if cfg.Username != "" {
		base.Net.SASL.Enable = true
		base.Net.SASL.User = cfg.Username
		base.Net.SASL.Password = cfg.Password
		switch strings.ToUpper(strings.TrimSpace(cfg.SASLMechanism)) {
		case "SCRAM-SHA-512":
			base.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
			base.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return newSCRAMClient(scram.SHA512)
			}
		case "SCRAM-SHA-256":
			base.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
			base.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
				return newSCRAMClient(scram.SHA256)
			}
		default:
			base.Net.SASL.Mechanism = sarama.SASLTypePlaintext
		}
	}
	return base
}

// SetPublishObserver installs or replaces the publish observer. It is safe to call
// before the manager is used concurrently.
func (m *Manager) SetPublishObserver(observer PublishObserver) {
	if m == nil {
		return
	}
	m.observerMu.Lock()
	m.publishObserver = observer
	m.observerMu.Unlock()
}

func (m *Manager) publishObserverSnapshot() PublishObserver {
	if m == nil {
		return nil
	}
	m.observerMu.RLock()
	observer := m.publishObserver
	m.observerMu.RUnlock()
	return observer
}

// Publish sends a message to the given topic (falls back to cfg.Topic).
// Trace context is injected into the record headers ahead of any extra headers.
func (m *Manager) Publish(ctx context.Context, topic string, key, value []byte, extra ...Header) (err error) {
	if m == nil {
		return ErrNilManager
	}
	if topic == "" {
		topic = m.cfg.Topic
	}
	start := time.Now()
	defer func() {
		if observer := m.publishObserverSnapshot(); observer != nil {
			observer.ObservePublish(topic, time.Since(start), err)
		}
	}()
	if topic == "" {
		return ErrNoTopic
	}

	var headers kafkaHeadersCarrier
	otel.GetTextMapPropagator().Inject(ctx, &headers)
	for _, h := range extra {
		headers.Set(h.Key, h.Value)
	}

	msg := &sarama.ProducerMessage{Topic: topic, Headers: headers}
	if len(key) > 0 {
		msg.Key = sarama.ByteEncoder(key)
	}
	if len(value) > 0 {
		msg.Value = sarama.ByteEncoder(value)
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	_, _, err = m.producer.SendMessage(msg)
	return err
}

// Close shuts down producer.
func (m *Manager) Close() error {
	if m == nil {
		return nil
	}
	var err error
	m.closeOnce.Do(func() {
		if m.producer != nil {
			err = m.producer.Close()
		}
	})
	return err
}

func parseRequiredAcks(v string) sarama.RequiredAcks {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "none":
		return sarama.NoResponse
	case "one":
		return sarama.WaitForLocal
	default:
		return sarama.WaitForAll
	}
}

type scramClient struct {
	*scram.Client
	*scram.ClientConversation
	hash scram.HashGeneratorFcn
}

func newSCRAMClient(hash scram.HashGeneratorFcn) sarama.SCRAMClient {
	return &scramClient{hash: hash}
}

func (c *scramClient) Begin(userName, password, authzID string) error {
	client, err := c.hash.NewClient(userName, password, authzID)
	if err != nil {
		return err
	}
	c.Client = client
	c.ClientConversation = client.NewConversation()
	return nil
}

func (c *scramClient) Step(challenge string) (string, error) {
	return c.ClientConversation.Step(challenge)
}

func (c *scramClient) Done() bool {
	return c.ClientConversation.Done()
}
