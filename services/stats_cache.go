package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"main/model"
	"main/utils"

	"github.com/redis/go-redis/v9"
)

// statsCacheTTL bounds staleness when an invalidation is lost (e.g. a write
// from another instance).
var statsCacheTTL = utils.GetEnvAsDuration("STATS_CACHE_TTL", 10*time.Minute)

// StatsCache keeps the derived per-user stats snapshot in redis so dashboard
// refreshes don't rescan the whole log collection. Entries are dropped on
// every log write.
type StatsCache struct {
	client *redis.Client
}

var GlobalStatsCache *StatsCache

func NewStatsCache(redisURL string) (*StatsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &StatsCache{client: client}, nil
}

func statsKey(userID string) string {
	return fmt.Sprintf("stats:%s", userID)
}

func (sc *StatsCache) Get(ctx context.Context, userID string) (*model.Stats, error) {
	if userID == "" {
		return nil, fmt.Errorf("userID cannot be empty")
	}

	data, err := sc.client.Get(ctx, statsKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get stats from cache: %v", err)
	}

	var stats model.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats: %v", err)
	}
	return &stats, nil
}

func (sc *StatsCache) Set(ctx context.Context, userID string, stats *model.Stats) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}

	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %v", err)
	}

	if err := sc.client.Set(ctx, statsKey(userID), data, statsCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache stats: %v", err)
	}
	return nil
}

// Invalidate drops the cached snapshot after any daily-log mutation.
func (sc *StatsCache) Invalidate(ctx context.Context, userID string) error {
	if userID == "" {
		return fmt.Errorf("userID cannot be empty")
	}
	return sc.client.Del(ctx, statsKey(userID)).Err()
}

func (sc *StatsCache) IsConnected() bool {
	if sc == nil || sc.client == nil {
		return false
	}
	return sc.client.Ping(context.Background()).Err() == nil
}

func (sc *StatsCache) Close() error {
	return sc.client.Close()
}
