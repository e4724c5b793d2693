package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/calmtree/profilewizard-backend/internal/logger"
	"github.com/calmtree/profilewizard-backend/internal/types"
)

// ProgressCache is a per-user read cache in front of the step_progress
// table. The database stays the source of truth; entries are dropped on
// every write.
type ProgressCache interface {
	Get(ctx context.Context, userID uuid.UUID) ([]*types.StepProgress, bool, error)
	Set(ctx context.Context, userID uuid.UUID, rows []*types.StepProgress) error
	Invalidate(ctx context.Context, userID uuid.UUID) error
	Close() error
}

type progressCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewProgressCache(log *logger.Logger) (ProgressCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &progressCache{
		log: log.With("service", "RedisProgressCache"),
		rdb: rdb,
		ttl: 10 * time.Minute,
	}, nil
}

func progressKey(userID uuid.UUID) string {
	return "progress:" + userID.String()
}

func (c *progressCache) Get(ctx context.Context, userID uuid.UUID) ([]*types.StepProgress, bool, error) {
	raw, err := c.rdb.Get(ctx, progressKey(userID)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}
	var rows []*types.StepProgress
	if err := json.Unmarshal(raw, &rows); err != nil {
		// Corrupt entry, treat as a miss and let the next Set repair it.
		c.log.Warn("Dropping undecodable progress cache entry", "user_id", userID, "error", err)
		_ = c.rdb.Del(ctx, progressKey(userID)).Err()
		return nil, false, nil
	}
	return rows, true, nil
}

func (c *progressCache) Set(ctx context.Context, userID uuid.UUID, rows []*types.StepProgress) error {
	raw, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("marshal progress rows: %w", err)
	}
	if err := c.rdb.Set(ctx, progressKey(userID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *progressCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.rdb.Del(ctx, progressKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (c *progressCache) Close() error {
	return c.rdb.Close()
}
