package config

import (
	"context"
	"fmt"
	"time"

	"github.com/ariebrainware/hospital-directory/util"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis builds and pings a Redis client. It returns nil, nil when
// Redis is disabled or the app runs in the test environment.
func ConnectRedis(ctx context.Context, cfg *Config) (*redis.Client, error) {
	if !cfg.RedisEnabled || cfg.IsTest() {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	util.Logger().Info().Str("addr", cfg.RedisAddr).Msg("connected to redis")
	return rdb, nil
}
