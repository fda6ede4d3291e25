package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

type RedisEnv struct {
	Host     string `env:"HOST"`
	Port     uint   `env:"PORT"`
	Password string `env:"PASSWORD" envDefault:""`
}

func (env *RedisEnv) DSN() string {
	return fmt.Sprintf("%s:%d", env.Host, env.Port)
}

func NewCache(env *Env) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr:     env.Redis.DSN(),
		Password: env.Redis.Password,
		DB:       0, // use default DB
	})

	ping := func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		return rdb.Ping(ctx).Err()
	}
	if err := backoff.Retry(ping, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 5)); err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	return rdb
}
