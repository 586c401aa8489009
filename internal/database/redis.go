package database

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/soluciones-it/billing-service/internal/config"
)

// Redis representa la conexión a Redis
type Redis struct {
	*redis.Client
}

// ConnectRedis establece la conexión a Redis
func ConnectRedis(cfg *config.Config) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.GetRedisAddr(),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Verificar conexión
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("error pinging Redis: %w", err)
	}

	return &Redis{client}, nil
}

// Close cierra la conexión a Redis
func (r *Redis) Close() error {
	return r.Client.Close()
}

// HealthCheck verifica la salud de Redis
func (r *Redis) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.Ping(ctx).Err()
}

// Incr incrementa un contador
func (r *Redis) Incr(key string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.Client.Incr(ctx, key).Result()
}

// Expire establece TTL para una clave
func (r *Redis) Expire(key string, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.Client.Expire(ctx, key, ttl).Err()
}
