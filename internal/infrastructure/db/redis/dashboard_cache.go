package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
)

const defaultDashboardTTL = 5 * time.Minute

// DashboardCache keeps computed dashboard summaries per period.
// Key format: dashboard:<period>
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDashboardCache(client *redis.Client, ttl time.Duration) *DashboardCache {
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}
	return &DashboardCache{client: client, ttl: ttl}
}

func (c *DashboardCache) Get(ctx context.Context, period domain.DashboardPeriod) (*domain.DashboardSummary, bool, error) {
	raw, err := c.client.Get(ctx, dashboardKey(period)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("dashboard cache get: %w", err)
	}

	var s domain.DashboardSummary
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, false, fmt.Errorf("dashboard cache decode: %w", err)
	}
	return &s, true, nil
}

func (c *DashboardCache) Set(ctx context.Context, s *domain.DashboardSummary) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("dashboard cache encode: %w", err)
	}
	return c.client.Set(ctx, dashboardKey(s.Period), raw, c.ttl).Err()
}

func dashboardKey(p domain.DashboardPeriod) string { return "dashboard:" + string(p) }
