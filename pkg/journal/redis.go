package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of redis.Cmdable used by RedisSink.
type RedisClient interface {
	RPush(ctx context.Context, key string, values ...any) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
}

// RedisSink appends records to a list per correlation id. Each write
// refreshes the list's TTL.
type RedisSink struct {
	client RedisClient
	prefix string
	ttl    time.Duration
}

func NewRedisSink(client RedisClient, prefix string, ttl time.Duration) *RedisSink {
	return &RedisSink{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisSink) Key(correlationID string) string { return s.prefix + correlationID }

func (s *RedisSink) Write(ctx context.Context, r Record) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("journal: marshal record %s: %w", r.ID, err)
	}
	key := s.Key(r.key())
	if err := s.client.RPush(ctx, key, payload).Err(); err != nil {
		return fmt.Errorf("journal: rpush %s: %w", key, err)
	}
	if s.ttl > 0 {
		if err := s.client.Expire(ctx, key, s.ttl).Err(); err != nil {
			return fmt.Errorf("journal: expire %s: %w", key, err)
		}
	}
	return nil
}

// Lookup returns the records stored for correlationID in write order.
func (s *RedisSink) Lookup(ctx context.Context, correlationID string) ([]Record, error) {
	key := s.Key(correlationID)
	raw, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("journal: lrange %s: %w", key, err)
	}
	records := make([]Record, 0, len(raw))
	for _, item := range raw {
		var r Record
		if err := json.Unmarshal([]byte(item), &r); err != nil {
			return nil, fmt.Errorf("journal: decode %s: %w", key, err)
		}
		records = append(records, r)
	}
	return records, nil
}
