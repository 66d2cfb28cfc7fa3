package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL 상수 정의
const (
	TTLList    = 1 * time.Minute // 카탈로그 목록 (관리자 수정 빈도 높음)
	TTLDefault = 5 * time.Minute // 기본값
)

// 캐시 키 접두사
const (
	PrefixCatalog = "catalog:"
)

// Service Redis 캐시 서비스 인터페이스
type Service interface {
	// 기본 캐시 연산
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	// 카탈로그 목록 캐시 (엔티티별, 쿼리스트링 단위)
	GetList(ctx context.Context, entity, query string) ([]byte, error)
	SetList(ctx context.Context, entity, query string, data interface{}) error
	InvalidateEntity(ctx context.Context, entity string) error

	// 유틸리티
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
}

// NewService creates a new cache service backed by Redis
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func listKey(entity, query string) string {
	if query == "" {
		query = "-"
	}
	return PrefixCatalog + entity + ":" + query
}

func (c *redisCache) GetList(ctx context.Context, entity, query string) ([]byte, error) {
	return c.client.Get(ctx, listKey(entity, query)).Bytes()
}

func (c *redisCache) SetList(ctx context.Context, entity, query string, data interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, listKey(entity, query), raw, TTLList).Err()
}

// InvalidateEntity removes every cached list page for an entity
func (c *redisCache) InvalidateEntity(ctx context.Context, entity string) error {
	pattern := PrefixCatalog + entity + ":*"
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	return c.Delete(ctx, keys...)
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}
