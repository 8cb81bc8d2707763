package counters

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/spakiosk/internal/common"
	"github.com/dmitrijs2005/spakiosk/internal/server/models"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "ratelimit:"

// incrementScript resets or bumps one hash atomically and keeps the key
// alive until its reset instant. ARGV: now ms, resetAt ms.
var incrementScript = redis.NewScript(`
local reset = redis.call('HGET', KEYS[1], 'reset_at')
if (not reset) or tonumber(reset) <= tonumber(ARGV[1]) then
	redis.call('HSET', KEYS[1], 'count', 1, 'reset_at', ARGV[2])
else
	redis.call('HINCRBY', KEYS[1], 'count', 1)
end
local stored = redis.call('HGET', KEYS[1], 'reset_at')
redis.call('PEXPIREAT', KEYS[1], stored)
return {tonumber(redis.call('HGET', KEYS[1], 'count')), tonumber(stored)}
`)

// RedisRepository keeps counters in Redis hashes that expire on their own
// at reset time.
type RedisRepository struct {
	client redis.UniversalClient
}

func NewRedisRepository(client redis.UniversalClient) *RedisRepository {
	return &RedisRepository{client: client}
}

func counterKey(identity, endpoint string) string {
	return keyPrefix + endpoint + ":" + identity
}

func (r *RedisRepository) Get(ctx context.Context, identity, endpoint string) (*models.RateLimitCounter, error) {
	vals, err := r.client.HGetAll(ctx, counterKey(identity, endpoint)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(vals) == 0 {
		return nil, common.ErrorNotFound
	}
	count, err := strconv.Atoi(vals["count"])
	if err != nil {
		return nil, fmt.Errorf("bad counter value %q: %w", vals["count"], err)
	}
	resetMs, err := strconv.ParseInt(vals["reset_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad counter reset %q: %w", vals["reset_at"], err)
	}
	return &models.RateLimitCounter{
		Identity: identity,
		Endpoint: endpoint,
		Count:    count,
		ResetAt:  time.UnixMilli(resetMs),
	}, nil
}

func (r *RedisRepository) Increment(ctx context.Context, identity, endpoint string, now, resetAt time.Time) (*models.RateLimitCounter, error) {
	res, err := incrementScript.Run(ctx, r.client,
		[]string{counterKey(identity, endpoint)},
		now.UnixMilli(), resetAt.UnixMilli(),
	).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("redis error: unexpected script reply %v", res)
	}
	return &models.RateLimitCounter{
		Identity: identity,
		Endpoint: endpoint,
		Count:    int(res[0]),
		ResetAt:  time.UnixMilli(res[1]),
	}, nil
}

// DeleteExpired sweeps keys whose expiry has not fired yet, e.g. after a
// clock adjustment.
func (r *RedisRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	var deleted int64
	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		v, err := r.client.HGet(ctx, key, "reset_at").Int64()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return deleted, fmt.Errorf("redis error: %w", err)
		}
		if v > now.UnixMilli() {
			continue
		}
		n, err := r.client.Del(ctx, key).Result()
		if err != nil {
			return deleted, fmt.Errorf("redis error: %w", err)
		}
		deleted += n
	}
	if err := iter.Err(); err != nil {
		return deleted, fmt.Errorf("redis error: %w", err)
	}
	return deleted, nil
}
