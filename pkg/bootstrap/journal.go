package bootstrap

import (
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/service-lib/pkg/boundary"
	"github.com/Goden-Gun/service-lib/pkg/config"
	"github.com/Goden-Gun/service-lib/pkg/journal"
	"github.com/Goden-Gun/service-lib/pkg/kafka"
)

// InitJournal 根据配置组装故障日志 sink
// kafka / redis 为 nil 时跳过对应 sink；未启用时返回 nil
func InitJournal(cfg config.FaultConfig, producer *kafka.Manager, client *redis.Client) journal.Sink {
	if !cfg.JournalEnabled {
		return nil
	}
	var sinks journal.MultiSink
	if producer != nil {
		sinks = append(sinks, journal.NewKafkaSink(producer, cfg.JournalTopic))
	}
	if client != nil {
		sinks = append(sinks, journal.NewRedisSink(client, cfg.JournalPrefix, cfg.JournalTTL.Duration()))
	}
	if len(sinks) == 0 {
		log.Warn("fault journal enabled but neither kafka nor redis is configured")
		return nil
	}
	log.Infof("fault journal initialized with %d sink(s)", len(sinks))
	return sinks
}

// InitBoundary 创建 HTTP / gRPC 共用的故障边界
func InitBoundary(cfg *config.ServiceConfig, sink journal.Sink) *boundary.Boundary {
	return boundary.New(boundary.Options{
		Service:    cfg.App.Name,
		Production: cfg.Fault.IsProduction(cfg.App),
		Sink:       sink,
	})
}
