package db

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sh5080/ansan-chatbot-go/pkg/configs"
	constants "github.com/sh5080/ansan-chatbot-go/pkg/types"
	"github.com/sh5080/ansan-chatbot-go/pkg/utils"
)

// NewRedisClient는 Redis 클라이언트를 생성하고 연결을 확인합니다
func NewRedisClient(ctx context.Context, config *configs.EnvConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Addr,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("Redis 연결 실패(%s): %w", config.Redis.Addr, err)
	}

	utils.Info(constants.SERVICE_CACHE, "Redis 연결 완료: %s", config.Redis.Addr)
	return client, nil
}
