package bootstrap

import (
	"github.com/Goden-Gun/service-lib/pkg/config"
	"github.com/Goden-Gun/service-lib/pkg/kafka"
)

// KafkaConfig maps the config section onto the producer manager's config.
func KafkaConfig(cfg config.KafkaConfig) kafka.Config {
	return kafka.Config{
		Brokers:       cfg.Brokers,
		Topic:         cfg.Topic,
		ClientID:      cfg.ClientID,
		Username:      cfg.Username,
		Password:      cfg.Password,
		SASLMechanism: cfg.SASLMechanism,
		TLSEnabled:    cfg.TLSEnabled,
		RequiredAcks:  cfg.RequiredAcks,
		MaxAttempts:   cfg.MaxAttempts,
	}
}

// InitKafka initializes a shared Kafka manager. It returns nil, nil when
// Kafka is disabled.
func InitKafka(cfg config.KafkaConfig) (*kafka.Manager, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	return kafka.NewManager(KafkaConfig(cfg))
}
