package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = time.Hour

// MovementDedup remembers which stock movements were already recorded.
// Key format: movement:<id>
type MovementDedup struct {
	client *redis.Client
}

func NewMovementDedup(client *redis.Client) *MovementDedup {
	return &MovementDedup{client: client}
}

// IsDuplicate reports whether the movement has already been recorded.
func (d *MovementDedup) IsDuplicate(ctx context.Context, movementID string) (bool, error) {
	n, err := d.client.Exists(ctx, movementKey(movementID)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records the movement id; the key expires after dedupTTL.
func (d *MovementDedup) Mark(ctx context.Context, movementID string) error {
	return d.client.Set(ctx, movementKey(movementID), "1", dedupTTL).Err()
}

func movementKey(id string) string { return "movement:" + id }
