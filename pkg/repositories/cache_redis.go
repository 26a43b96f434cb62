package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	_interface "github.com/sh5080/ansan-chatbot-go/pkg/interfaces"
)

// RedisCacheRepository는 Redis에 캐시 값을 저장합니다
type RedisCacheRepository struct {
	client redis.Cmdable
}

// NewRedisCacheRepository는 Redis 캐시 저장소를 생성합니다
func NewRedisCacheRepository(client redis.Cmdable) _interface.CacheStore {
	return &RedisCacheRepository{client: client}
}

// Get은 키에 해당하는 값을 조회합니다. 키가 없으면 found가 false입니다.
func (r *RedisCacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("Redis 조회 실패(%s): %w", key, err)
	}
	return value, true, nil
}

// Set은 값을 저장합니다. ttl이 0이면 만료 없이 저장합니다.
func (r *RedisCacheRepository) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("Redis 저장 실패(%s): %w", key, err)
	}
	return nil
}
