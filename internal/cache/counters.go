package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// CounterCache guarda os contadores do dia por prestador com TTL curto.
// É opcional: com client nil, todas as operações viram no-op.
type CounterCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCounterCache(client *redis.Client, ttl time.Duration) *CounterCache {
	return &CounterCache{client: client, ttl: ttl}
}

func NewRedisClient(addr, password string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		PoolSize:     10,
		MinIdleConns: 1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}

	return rdb, nil
}

type TodayCounters struct {
	Total     int64 `json:"total"`
	Confirmed int64 `json:"confirmed"`
}

func key(providerID string, day time.Time) string {
	return "appointments:today:" + providerID + ":" + day.Format("2006-01-02")
}

func (c *CounterCache) Get(ctx context.Context, providerID string, day time.Time) (*TodayCounters, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(providerID, day)).Bytes()
	if err != nil {
		return nil, false
	}

	var out TodayCounters
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return &out, true
}

func (c *CounterCache) Set(ctx context.Context, providerID string, day time.Time, counters TodayCounters) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(counters)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, key(providerID, day), raw, c.ttl).Err()
}
