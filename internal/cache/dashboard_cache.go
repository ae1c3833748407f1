package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"rawdati/internal/model"
)

// DashboardCache handles Redis caching of the per-tenant rollup. Short
// TTL: the dashboard tolerates a minute of staleness.
type DashboardCache interface {
	Get(ctx context.Context, tenantID string) (*model.DashboardStats, error)
	Set(ctx context.Context, tenantID string, stats *model.DashboardStats) error
}

type dashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache creates a new dashboard cache
func NewDashboardCache(client *redis.Client) DashboardCache {
	return &dashboardCache{
		client: client,
		ttl:    time.Minute,
	}
}

func (c *dashboardCache) key(tenantID string) string {
	return fmt.Sprintf("tenant:%s:dashboard", tenantID)
}

func (c *dashboardCache) Get(ctx context.Context, tenantID string) (*model.DashboardStats, error) {
	data, err := c.client.Get(ctx, c.key(tenantID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var stats model.DashboardStats
	if err := json.Unmarshal([]byte(data), &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *dashboardCache) Set(ctx context.Context, tenantID string, stats *model.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(tenantID), data, c.ttl).Err()
}
