package redisx

import (
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gustavorods/2025-flink-startup-backend/configs"
)

func Open(cfg *configs.Config) *redis.Client {
	addr := fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort)
	return redis.NewClient(&redis.Options{
		Addr: addr,
	})
}
