package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/voltworks/inventory-engine/internal/bom"
	"github.com/voltworks/inventory-engine/internal/config"
	"github.com/voltworks/inventory-engine/internal/domain"
)

const (
	healthKey          = "inventory:health"
	capacityKeyPrefix  = "inventory:capacity"
	reportScanBatch    = 100
	inventoryKeyPrefix = "inventory:"
)

// ReportCache caches derived engine reports between snapshot reloads.
// Derived results are pure functions of the snapshot, so the whole cache is
// invalidated on reload and nothing else ever needs eviction logic.
type ReportCache interface {
	GetHealthReport(ctx context.Context) ([]domain.HealthRecord, bool, error)
	SetHealthReport(ctx context.Context, records []domain.HealthRecord) error
	GetCapacity(ctx context.Context, model string) (*domain.CapacityResult, bool, error)
	SetCapacity(ctx context.Context, model string, result domain.CapacityResult) error
	InvalidateAll(ctx context.Context) error
}

type redisReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopReportCache struct{}

// NewReportCache returns a redis-backed cache when enabled, otherwise a
// noop implementation so callers never need a nil check.
func NewReportCache(cfg config.CacheConfig) (ReportCache, error) {
	if !cfg.Enabled {
		return &noopReportCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisReportCache{client: client, ttl: ttl}, nil
}

func NewNoopReportCache() ReportCache {
	return &noopReportCache{}
}

func (c *redisReportCache) GetHealthReport(ctx context.Context) ([]domain.HealthRecord, bool, error) {
	payload, err := c.client.Get(ctx, healthKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var records []domain.HealthRecord
	if err := json.Unmarshal(payload, &records); err != nil {
		return nil, false, fmt.Errorf("decode health report cache: %w", err)
	}
	return records, true, nil
}

func (c *redisReportCache) SetHealthReport(ctx context.Context, records []domain.HealthRecord) error {
	payload, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode health report cache: %w", err)
	}
	if err := c.client.Set(ctx, healthKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReportCache) GetCapacity(ctx context.Context, model string) (*domain.CapacityResult, bool, error) {
	payload, err := c.client.Get(ctx, capacityKey(model)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var result domain.CapacityResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, fmt.Errorf("decode capacity cache: %w", err)
	}
	return &result, true, nil
}

func (c *redisReportCache) SetCapacity(ctx context.Context, model string, result domain.CapacityResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode capacity cache: %w", err)
	}
	if err := c.client.Set(ctx, capacityKey(model), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *redisReportCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, inventoryKeyPrefix, reportScanBatch)
}

func capacityKey(model string) string {
	return fmt.Sprintf("%s:%s", capacityKeyPrefix, bom.NormalizeModel(model))
}

func (n *noopReportCache) GetHealthReport(ctx context.Context) ([]domain.HealthRecord, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetHealthReport(ctx context.Context, records []domain.HealthRecord) error {
	return nil
}

func (n *noopReportCache) GetCapacity(ctx context.Context, model string) (*domain.CapacityResult, bool, error) {
	return nil, false, nil
}

func (n *noopReportCache) SetCapacity(ctx context.Context, model string, result domain.CapacityResult) error {
	return nil
}

func (n *noopReportCache) InvalidateAll(ctx context.Context) error {
	return nil
}
