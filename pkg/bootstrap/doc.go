// Package bootstrap provides common initialization utilities for microservices.
//
// This package consolidates repeated initialization logic across services including:
//   - Logger setup with file rotation and fault field flattening
//   - Redis connection management
//   - Kafka producer and fault journal wiring
//   - OpenTelemetry tracing initialization
//
// Example usage:
//
//	func main() {
//	    cfg, err := config.LoadServiceConfig()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Initialize logger
//	    if err := bootstrap.InitLoggerWithFile(cfg.Log, cfg.App.Name); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Initialize Redis and Kafka
//	    redisClient, err := bootstrap.InitRedis(ctx, cfg.Redis)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    producer, err := bootstrap.InitKafka(cfg.Kafka)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    // Initialize tracing
//	    shutdown, err := bootstrap.InitTracing(ctx, cfg.Tracing)
//	    if err != nil {
//	        log.Warn(err)
//	    }
//	    defer shutdown(ctx)
//
//	    b := bootstrap.InitBoundary(cfg, bootstrap.InitJournal(cfg.Fault, producer, redisClient))
//	    engine.Use(middleware.FaultBoundary(b), middleware.RequireHeaders(cfg.Headers, b))
//	}
package bootstrap
