package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()

var RedisClient *redis.Client

func ConnectRedis() (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     GetEnvDefault("REDIS_ADDR", "localhost:6379"),
		Username: GetEnv("REDIS_USER"),
		Password: GetEnv("REDIS_PASSWORD"),
		DB:       0,
	})

	if _, err := rdb.Ping(Ctx).Result(); err != nil {
		return nil, err
	}

	log.Println("Conexión a Redis establecida")
	RedisClient = rdb
	return rdb, nil
}
