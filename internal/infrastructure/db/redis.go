package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/kikiru328/LLearn-sub001/internal/config"
	"github.com/kikiru328/LLearn-sub001/internal/domain/repository"
)

// NewRedisClient Redis 클라이언트를 생성합니다.
func NewRedisClient(cfg *config.Config, zapLogger *zap.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("Redis 연결 실패: %w", err)
	}

	zapLogger.Info("Redis 연결 성공",
		zap.String("host", cfg.Redis.Host),
		zap.Int("port", cfg.Redis.Port),
	)

	return client, nil
}

// RedisCacheRepository Redis 기반 캐시 저장소 구현체
type RedisCacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisCacheRepository Redis 캐시 저장소를 생성합니다.
func NewRedisCacheRepository(client *redis.Client, zapLogger *zap.Logger) repository.CacheRepository {
	return &RedisCacheRepository{client: client, logger: zapLogger}
}

// Set 키-값 저장
func (r *RedisCacheRepository) Set(ctx context.Context, key, value string, expiration time.Duration) error {
	if err := r.client.Set(ctx, key, value, expiration).Err(); err != nil {
		r.logger.Error("Redis Set 실패", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Get 키로 값 조회
func (r *RedisCacheRepository) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		r.logger.Error("Redis Get 실패", zap.String("key", key), zap.Error(err))
		return "", false, err
	}
	return value, true, nil
}

// Delete 키 삭제
func (r *RedisCacheRepository) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		r.logger.Error("Redis Delete 실패", zap.String("key", key), zap.Error(err))
		return err
	}
	return nil
}

// Ping 연결 상태 확인
func (r *RedisCacheRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
