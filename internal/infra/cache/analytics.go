package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/tomasUnverdorben/floor-flow-sub000/internal/pkg/config"
	"github.com/tomasUnverdorben/floor-flow-sub000/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// AnalyticsCache caches rendered summary views in Redis. A nil client
// turns every operation into a no-op so the service runs without Redis.
type AnalyticsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAnalyticsCache(cfg config.RedisConfig) *AnalyticsCache {
	if cfg.Addr == "" {
		return &AnalyticsCache{}
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return &AnalyticsCache{client: client, ttl: cfg.CacheTTL}
}

func (c *AnalyticsCache) Get(ctx context.Context, key string) (*queries.SummaryView, bool) {
	if c.client == nil {
		return nil, false
	}

	payload, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("analytics cache read failed", "key", key, "error", err)
		}
		return nil, false
	}

	var view queries.SummaryView
	if err := json.Unmarshal(payload, &view); err != nil {
		slog.Warn("analytics cache payload corrupt", "key", key, "error", err)
		return nil, false
	}
	return &view, true
}

func (c *AnalyticsCache) Set(ctx context.Context, key string, view *queries.SummaryView) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(view)
	if err != nil {
		slog.Warn("analytics cache encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		slog.Warn("analytics cache write failed", "key", key, "error", err)
	}
}

func (c *AnalyticsCache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
