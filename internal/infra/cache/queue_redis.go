package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/queue"
)

const queueStatusKey = "clinic:queue:status"

// QueueRedisCache keeps the aggregated queue status for a short TTL.
// Failures are logged and treated as a miss.
type QueueRedisCache struct {
	client *redis.Client
	ttl    time.Duration
	log    zerolog.Logger
}

func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func NewQueueRedisCache(client *redis.Client, ttl time.Duration, log zerolog.Logger) *QueueRedisCache {
	return &QueueRedisCache{
		client: client,
		ttl:    ttl,
		log:    log.With().Str("component", "queue_cache").Logger(),
	}
}

func (c *QueueRedisCache) Get(ctx context.Context) (*queue.Status, bool) {
	raw, err := c.client.Get(ctx, queueStatusKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("queue cache read failed")
		return nil, false
	}

	var s queue.Status
	if err := json.Unmarshal(raw, &s); err != nil {
		c.log.Warn().Err(err).Msg("queue cache holds invalid value")
		return nil, false
	}
	return &s, true
}

func (c *QueueRedisCache) Set(ctx context.Context, s queue.Status) {
	raw, err := json.Marshal(s)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, queueStatusKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("queue cache write failed")
	}
}

func (c *QueueRedisCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, queueStatusKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("queue cache invalidate failed")
	}
}

var _ queue.Cache = (*QueueRedisCache)(nil)
